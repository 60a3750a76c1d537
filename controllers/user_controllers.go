package controllers

import (
	"errors"
	"net/http"

	"github.com/enapu/yard-backend/dto"
	"github.com/enapu/yard-backend/models"
	"github.com/enapu/yard-backend/services"
	"github.com/enapu/yard-backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	DB    *gorm.DB
	Users *services.UserService
}

func NewUserController(db *gorm.DB, users *services.UserService) *UserController {
	return &UserController{DB: db, Users: users}
}

func (uc *UserController) respondUser(c *gin.Context, code int, id uint) {
	var user models.User
	err := preload(uc.DB, dto.UserPreloads).WithContext(c.Request.Context()).First(&user, id).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, code, dto.NewUserView(user))
}

func (uc *UserController) GetAllUsers(c *gin.Context) {
	var users []models.User
	if !list(c, preload(uc.DB, dto.UserPreloads), &users) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, dto.NewUserViews(users))
}

// CreateUser stores a new account. The plaintext password is hashed before
// it reaches the database; activo defaults to true when omitted.
func (uc *UserController) CreateUser(c *gin.Context) {
	var req struct {
		Name          string  `json:"nombre" binding:"required,notblank,max=50"`
		Email         string  `json:"email" binding:"required,email,max=100"`
		Password      string  `json:"password" binding:"required,max=128"`
		Phone         *string `json:"telefono" binding:"omitempty,max=20"`
		Company       *string `json:"empresa" binding:"omitempty,max=100"`
		RoleID        uint    `json:"id_rol" binding:"required"`
		AccessLevelID uint    `json:"id_nivel_acceso" binding:"required"`
		Active        *bool   `json:"activo"`
	}
	if !bindJSON(c, &req) {
		return
	}
	if !checkReferences(c, uc.DB,
		ref("id_rol", &models.Role{}, &req.RoleID),
		ref("id_nivel_acceso", &models.AccessLevel{}, &req.AccessLevelID),
	) {
		return
	}

	hashed, ok := uc.hashPassword(c, req.Password)
	if !ok {
		return
	}
	user := models.User{
		Name:          req.Name,
		Email:         req.Email,
		Password:      hashed,
		Phone:         req.Phone,
		Company:       req.Company,
		RoleID:        req.RoleID,
		AccessLevelID: req.AccessLevelID,
		Active:        true,
	}
	if req.Active != nil {
		user.Active = *req.Active
	}
	if !create(c, uc.DB, &user) {
		return
	}

	utils.InfoLogger.Printf("New user registered: %s (id_rol=%d)", user.Email, user.RoleID)
	uc.respondUser(c, http.StatusCreated, user.ID)
}

func (uc *UserController) GetUserByID(c *gin.Context) {
	var user models.User
	if !findByID(c, preload(uc.DB, dto.UserPreloads), &user) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, dto.NewUserView(user))
}

// UpdateUser applies the provided fields. A non-empty password replaces
// the stored hash.
func (uc *UserController) UpdateUser(c *gin.Context) {
	var user models.User
	if !findByID(c, uc.DB, &user) {
		return
	}
	var req struct {
		Name          *string `json:"nombre" binding:"omitempty,notblank,max=50"`
		Email         *string `json:"email" binding:"omitempty,email,max=100"`
		Password      *string `json:"password" binding:"omitempty,max=128"`
		Phone         *string `json:"telefono" binding:"omitempty,max=20"`
		Company       *string `json:"empresa" binding:"omitempty,max=100"`
		RoleID        *uint   `json:"id_rol" binding:"omitempty,min=1"`
		AccessLevelID *uint   `json:"id_nivel_acceso" binding:"omitempty,min=1"`
		Active        *bool   `json:"activo"`
	}
	if !bindJSON(c, &req) {
		return
	}
	if !checkReferences(c, uc.DB,
		ref("id_rol", &models.Role{}, req.RoleID),
		ref("id_nivel_acceso", &models.AccessLevel{}, req.AccessLevelID),
	) {
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Company != nil {
		user.Company = req.Company
	}
	if req.RoleID != nil {
		user.RoleID = *req.RoleID
	}
	if req.AccessLevelID != nil {
		user.AccessLevelID = *req.AccessLevelID
	}
	if req.Active != nil {
		user.Active = *req.Active
	}
	if req.Password != nil && *req.Password != "" {
		hashed, ok := uc.hashPassword(c, *req.Password)
		if !ok {
			return
		}
		user.Password = hashed
	}

	if !save(c, uc.DB, &user) {
		return
	}
	uc.respondUser(c, http.StatusOK, user.ID)
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	destroy(c, uc.DB, &models.User{})
}

// Login checks an email/password pair. No session or token is issued; the
// caller gets the user view back.
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondMessage(c, http.StatusBadRequest, "Email y contraseña son requeridos")
		return
	}

	user, err := uc.Users.Login(c.Request.Context(), input.Email, input.Password)
	switch {
	case errors.Is(err, services.ErrMissingCredentials):
		utils.RespondMessage(c, http.StatusBadRequest, "Email y contraseña son requeridos")
		return
	case errors.Is(err, services.ErrUserNotFound):
		utils.RespondMessage(c, http.StatusNotFound, "Usuario no encontrado")
		return
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.RespondMessage(c, http.StatusUnauthorized, "Credenciales inválidas")
		return
	case err != nil:
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Login successful for user: %s", user.Email)
	c.JSON(http.StatusOK, gin.H{
		"user":    dto.NewUserView(*user),
		"message": "Login exitoso",
	})
}

func (uc *UserController) hashPassword(c *gin.Context, password string) (string, bool) {
	hashed, err := uc.Users.HashPassword(password)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		utils.RespondMessage(c, http.StatusBadRequest, "password: la contraseña no puede superar 72 bytes")
		return "", false
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return "", false
	}
	return hashed, true
}

// GetUsersByRole lists active users with the role named in ?role=.
func (uc *UserController) GetUsersByRole(c *gin.Context) {
	users, err := uc.Users.ByRole(c.Request.Context(), c.Query("role"))
	if errors.Is(err, services.ErrRoleRequired) {
		utils.RespondMessage(c, http.StatusBadRequest, "Rol no especificado")
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, dto.NewUserViews(users))
}
