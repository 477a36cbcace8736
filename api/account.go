package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/openrelief/relief-api/schema"
	"github.com/openrelief/relief-api/store"
)

const minPasswordLength = 8

// accountRegister creates a profile with a credential digest. The account
// number is generated here, never caller-supplied.
func (s *Server) accountRegister(c *gin.Context) {
	var params struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
		Phone    string `json:"phone_number"`
		Role     string `json:"role"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Role == "" {
		params.Role = schema.RoleVictim
	}

	if params.Email == "" || params.FullName == "" ||
		len(params.Password) < minPasswordLength ||
		!schema.IsValidRole(params.Role) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	profile := schema.Profile{
		ID:             uuid.New().String(),
		AccountNumber:  uuid.New().String(),
		Email:          params.Email,
		FullName:       params.FullName,
		PhoneNumber:    params.Phone,
		Role:           params.Role,
		PasswordDigest: digest,
	}

	if err := s.mongoStore.CreateProfile(profile); err != nil {
		if err == store.ErrProfileTaken {
			abortWithEncoding(c, http.StatusConflict, errorAccountTaken)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": profile})
}

func (s *Server) accountDetail(c *gin.Context) {
	a := c.MustGet("account")
	profile, ok := a.(*schema.Profile)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": profile})
}

// accountUpdateLocation stores the account's last known coordinate. The
// point feeds the nearby-volunteer broadcast of new help requests.
func (s *Server) accountUpdateLocation(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Latitude == nil || params.Longitude == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorLocationRequired)
		return
	}

	err := s.mongoStore.UpdateProfileLocation(requester, schema.Location{
		Latitude:  *params.Latitude,
		Longitude: *params.Longitude,
	})
	if err == store.ErrProfileNotFound {
		abortWithEncoding(c, http.StatusUnauthorized, errorAccountNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
