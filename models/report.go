package models

// Report is a metadata row describing a generated report.
type Report struct {
	ID          uint   `gorm:"column:id;primaryKey" json:"id"`
	Type        string `gorm:"column:tipo;type:varchar(50);not null" json:"tipo"`
	GeneratedOn Date   `gorm:"column:fecha_generacion;type:date;not null" json:"fecha_generacion"`
	Parameters  string `gorm:"column:parametros;type:varchar(50);not null" json:"parametros"`
}

func (Report) TableName() string { return "Reporte" }
