package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 8 * time.Hour

var jwtSecret string

func InitJWTSecret() error {
	jwtSecret = os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is not set")
	}
	return nil
}

// Claims is the decoded identity carried by every authenticated request.
type Claims struct {
	UserID    int
	Username  string
	Role      int
	FirstName string
}

func GenerateJWT(userID int, username string, role int, firstName string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID,
		"username":   username,
		"role":       role,
		"first_name": firstName,
		"exp":        time.Now().Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

func VerifyJWT(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("Invalid or expired token")
	}

	return token, nil
}

// ParseClaims extracts the identity fields from a verified token.
func ParseClaims(token *jwt.Token) (Claims, bool) {
	mapClaims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		return Claims{}, false
	}

	userID, ok := mapClaims["user_id"].(float64)
	if !ok {
		return Claims{}, false
	}

	role, ok := mapClaims["role"].(float64)
	if !ok {
		return Claims{}, false
	}

	username, _ := mapClaims["username"].(string)
	firstName, _ := mapClaims["first_name"].(string)

	return Claims{
		UserID:    int(userID),
		Username:  username,
		Role:      int(role),
		FirstName: firstName,
	}, true
}
