package types

// ProjectRef and ClientRef are the shapes stored inside a user's
// denormalized project/client snapshot lists.
type ProjectRef struct {
	ProjectName string `json:"projectName"`
	RefID       string `json:"refId,omitempty"`
}

type ClientRef struct {
	ClientName string       `json:"clientName"`
	Projects   []ProjectRef `json:"projects,omitempty"`
}

type UserResponse struct {
	UserID    int    `json:"userId"`
	Username  string `json:"username"`
	Role      int    `json:"role"`
	FirstName string `json:"firstName"`
}
