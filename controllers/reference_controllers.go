package controllers

import (
	"net/http"

	"github.com/enapu/yard-backend/models"
	"github.com/enapu/yard-backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RoleController struct {
	DB *gorm.DB
}

func NewRoleController(db *gorm.DB) *RoleController {
	return &RoleController{DB: db}
}

func (rc *RoleController) GetAllRoles(c *gin.Context) {
	var roles []models.Role
	if !list(c, rc.DB, &roles) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, roles)
}

func (rc *RoleController) CreateRole(c *gin.Context) {
	var body struct {
		Name string `json:"rol" binding:"required,notblank,max=50"`
	}
	if !bindJSON(c, &body) {
		return
	}
	role := models.Role{Name: body.Name}
	if !create(c, rc.DB, &role) {
		return
	}
	utils.RespondJSON(c, http.StatusCreated, role)
}

func (rc *RoleController) GetRoleByID(c *gin.Context) {
	var role models.Role
	if !findByID(c, rc.DB, &role) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, role)
}

func (rc *RoleController) UpdateRole(c *gin.Context) {
	var role models.Role
	if !findByID(c, rc.DB, &role) {
		return
	}
	var body struct {
		Name *string `json:"rol" binding:"omitempty,notblank,max=50"`
	}
	if !bindJSON(c, &body) {
		return
	}
	if body.Name != nil {
		role.Name = *body.Name
	}
	if !save(c, rc.DB, &role) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, role)
}

func (rc *RoleController) DeleteRole(c *gin.Context) {
	destroy(c, rc.DB, &models.Role{})
}

type AccessLevelController struct {
	DB *gorm.DB
}

func NewAccessLevelController(db *gorm.DB) *AccessLevelController {
	return &AccessLevelController{DB: db}
}

func (ac *AccessLevelController) GetAllLevels(c *gin.Context) {
	var levels []models.AccessLevel
	if !list(c, ac.DB, &levels) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, levels)
}

func (ac *AccessLevelController) CreateLevel(c *gin.Context) {
	var body struct {
		Name string `json:"nivel" binding:"required,notblank,max=50"`
	}
	if !bindJSON(c, &body) {
		return
	}
	level := models.AccessLevel{Name: body.Name}
	if !create(c, ac.DB, &level) {
		return
	}
	utils.RespondJSON(c, http.StatusCreated, level)
}

func (ac *AccessLevelController) GetLevelByID(c *gin.Context) {
	var level models.AccessLevel
	if !findByID(c, ac.DB, &level) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, level)
}

func (ac *AccessLevelController) UpdateLevel(c *gin.Context) {
	var level models.AccessLevel
	if !findByID(c, ac.DB, &level) {
		return
	}
	var body struct {
		Name *string `json:"nivel" binding:"omitempty,notblank,max=50"`
	}
	if !bindJSON(c, &body) {
		return
	}
	if body.Name != nil {
		level.Name = *body.Name
	}
	if !save(c, ac.DB, &level) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, level)
}

func (ac *AccessLevelController) DeleteLevel(c *gin.Context) {
	destroy(c, ac.DB, &models.AccessLevel{})
}
