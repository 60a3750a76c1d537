package models

import "time"

// Role names a kind of account, e.g. ADMINISTRADOR, OPERARIO, CLIENTE.
type Role struct {
	ID   uint   `gorm:"column:id;primaryKey" json:"id"`
	Name string `gorm:"column:rol;type:varchar(50);not null" json:"rol"`
}

func (Role) TableName() string { return "Rol" }

type AccessLevel struct {
	ID   uint   `gorm:"column:id;primaryKey" json:"id"`
	Name string `gorm:"column:nivel;type:varchar(50);not null" json:"nivel"`
}

func (AccessLevel) TableName() string { return "Nivel_acceso" }

// User is a client, operator or administrator account. Active is the only
// soft-delete flag in the schema; inactive users cannot log in.
type User struct {
	ID            uint         `gorm:"column:id;primaryKey" json:"id"`
	Name          string       `gorm:"column:nombre;type:varchar(50);not null" json:"nombre"`
	Email         string       `gorm:"column:email;type:varchar(100);uniqueIndex;not null" json:"email"`
	Password      string       `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Phone         *string      `gorm:"column:telefono;type:varchar(20)" json:"telefono"`
	Company       *string      `gorm:"column:empresa;type:varchar(100)" json:"empresa"`
	RoleID        uint         `gorm:"column:id_rol;not null;index" json:"id_rol"`
	Role          *Role        `gorm:"foreignKey:RoleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	AccessLevelID uint         `gorm:"column:id_nivel_acceso;not null;index" json:"id_nivel_acceso"`
	AccessLevel   *AccessLevel `gorm:"foreignKey:AccessLevelID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	UpdatedAt     time.Time    `gorm:"column:fecha_modificacion;autoUpdateTime" json:"fecha_modificacion"`
	CreatedAt     time.Time    `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
	Active        bool         `gorm:"column:activo;not null" json:"activo"`
}

func (User) TableName() string { return "Usuario" }
