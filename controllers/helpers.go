package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/enapu/yard-backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const msgNotFound = "No encontrado."

// parseID reads the :id path parameter. A non-numeric id cannot match any
// row, so it is answered with 404 like an unknown one.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.RespondMessage(c, http.StatusNotFound, msgNotFound)
		return 0, false
	}
	return uint(id), true
}

// findByID loads dest by primary key and writes the error response when it
// cannot.
func findByID(c *gin.Context, q *gorm.DB, dest interface{}) bool {
	id, ok := parseID(c)
	if !ok {
		return false
	}
	err := q.WithContext(c.Request.Context()).First(dest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondMessage(c, http.StatusNotFound, msgNotFound)
		return false
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return false
	}
	return true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return false
	}
	return true
}

// reference names a row a payload points at through a foreign key column.
type reference struct {
	field string
	model interface{}
	id    *uint
}

func ref(field string, model interface{}, id *uint) reference {
	return reference{field: field, model: model, id: id}
}

// checkReferences answers 400 when a referenced row does not exist. Nil
// ids are skipped.
func checkReferences(c *gin.Context, db *gorm.DB, refs ...reference) bool {
	for _, r := range refs {
		if r.id == nil {
			continue
		}
		var count int64
		err := db.WithContext(c.Request.Context()).Model(r.model).Where("id = ?", *r.id).Count(&count).Error
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return false
		}
		if count == 0 {
			utils.RespondError(c, http.StatusBadRequest,
				fmt.Errorf("%s: clave primaria %d inválida, el objeto no existe", r.field, *r.id))
			return false
		}
	}
	return true
}

func save(c *gin.Context, db *gorm.DB, value interface{}) bool {
	if err := db.WithContext(c.Request.Context()).Save(value).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return false
	}
	return true
}

func create(c *gin.Context, db *gorm.DB, value interface{}) bool {
	if err := db.WithContext(c.Request.Context()).Create(value).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return false
	}
	return true
}

// destroy deletes the row with the path id, answering 204 or 404.
func destroy(c *gin.Context, db *gorm.DB, model interface{}) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res := db.WithContext(c.Request.Context()).Delete(model, id)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondMessage(c, http.StatusNotFound, msgNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func list(c *gin.Context, q *gorm.DB, dest interface{}) bool {
	if err := q.WithContext(c.Request.Context()).Order("id").Find(dest).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return false
	}
	return true
}

func preload(db *gorm.DB, relations []string) *gorm.DB {
	for _, r := range relations {
		db = db.Preload(r)
	}
	return db
}
