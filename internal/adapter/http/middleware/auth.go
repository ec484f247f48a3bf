package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"turismo_xpto/internal/domain/entities"
	"turismo_xpto/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const actorContextKey = "actor"

func jwtSecret() []byte {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		return []byte(v)
	}
	// Local-friendly default, same spirit as the DynamoDB credentials.
	return []byte("local")
}

// GenerateJWT issues a bearer token for a back-office user.
func GenerateJWT(userID, name string, role entities.Role) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"name":   name,
		"role":   string(role),
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
}

// RequireAuth validates the bearer token and stores the resolved Actor in the
// gin context. Handlers pass the actor explicitly into usecases from there;
// nothing below the adapter layer reads ambient session state.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Missing or invalid Authorization header")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return jwtSecret(), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "Invalid token payload")
			return
		}
		userID, _ := claims["userId"].(string)
		name, _ := claims["name"].(string)
		rawRole, _ := claims["role"].(string)
		role, ok := entities.ParseRole(rawRole)
		if userID == "" || !ok {
			abortUnauthorized(c, "Invalid token payload")
			return
		}

		SetActor(c, entities.Actor{ID: userID, Name: name, Role: role})
		c.Next()
	}
}

// SetActor stores the actor in the gin context. Exported for handler tests.
func SetActor(c *gin.Context, actor entities.Actor) {
	c.Set(actorContextKey, actor)
}

// ActorFromContext returns the actor resolved by RequireAuth.
func ActorFromContext(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}

func abortUnauthorized(c *gin.Context, message string) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", message, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
