package sources

import "github.com/upbvirtual/enroller/pkg/roster"

// Field binds a source column to a field of roster.Raw.
type Field struct {
	Column string
	Set    func(*roster.Raw, string)
}

// Schema describes the columns a record table must carry.
type Schema struct {
	ID             ID
	Fields         []Field
	PreferredSheet int // sheet index tried first in workbooks
}

// Columns returns the required column names.
func (s Schema) Columns() []string {
	out := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		out[i] = f.Column
	}
	return out
}

// Map reads one table row into a roster.Raw.
func (s Schema) Map(t *Table, row []string) roster.Raw {
	var raw roster.Raw
	for _, f := range s.Fields {
		f.Set(&raw, t.Cell(row, f.Column))
	}
	return raw
}

// StudentSchema is the enrollment export (SZREINS), second sheet.
var StudentSchema = Schema{
	ID:             StudentsID,
	PreferredSheet: 1,
	Fields: []Field{
		{"PERIODO", func(r *roster.Raw, v string) { r.Period = v }},
		{"NRC", func(r *roster.Raw, v string) { r.NRC = v }},
		{"LISTA_CRUZADA", func(r *roster.Raw, v string) { r.CrossList = v }},
		{"ID_ESTUDIANTE", func(r *roster.Raw, v string) { r.PersonID = v }},
		{"TIPO_DOCUMENTO", func(r *roster.Raw, v string) { r.DocumentType = v }},
		{"DOCUMENTO", func(r *roster.Raw, v string) { r.Document = v }},
		{"CORREO_ESTUDIANTE", func(r *roster.Raw, v string) { r.Email = v }},
		{"NOMBRE_ESTUDIANTE", func(r *roster.Raw, v string) { r.FirstName = v }},
		{"APELLIDO_ESTUDIANTE", func(r *roster.Raw, v string) { r.LastName = v }},
		{"COD_INSCRIPCIÓN", func(r *roster.Raw, v string) { r.EnrollmentCode = v }},
		{"ESTADO_INSCRIPCIÓN", func(r *roster.Raw, v string) { r.Status = v }},
		{"FECHA_ACTIVIDAD_EST", func(r *roster.Raw, v string) { r.ActivityDate = v }},
		{"PAGO", func(r *roster.Raw, v string) { r.Payment = v }},
		{"SOCIO_INTEGRADOR", func(r *roster.Raw, v string) { r.Partner = v }},
	},
}

// ModeratorSchema is the teaching-assignment export, first sheet.
var ModeratorSchema = Schema{
	ID:             ModeratorsID,
	PreferredSheet: 0,
	Fields: []Field{
		{"PERIODO", func(r *roster.Raw, v string) { r.Period = v }},
		{"NRC", func(r *roster.Raw, v string) { r.NRC = v }},
		{"LISTA_CRUZADA", func(r *roster.Raw, v string) { r.CrossList = v }},
		{"ID_DOCENTE", func(r *roster.Raw, v string) { r.PersonID = v }},
		{"TIPO_DOCUMENTO", func(r *roster.Raw, v string) { r.DocumentType = v }},
		{"DOCUMENTO", func(r *roster.Raw, v string) { r.Document = v }},
		{"CORREO_DOCENTE", func(r *roster.Raw, v string) { r.Email = v }},
		{"NOMBRE_DOCENTE", func(r *roster.Raw, v string) { r.FirstName = v }},
		{"APELLIDO_DOCENTE", func(r *roster.Raw, v string) { r.LastName = v }},
		{"FECHA_ACTIVIDAD_DOC", func(r *roster.Raw, v string) { r.ActivityDate = v }},
	},
}

// SchemaFor returns the record schema of a variant.
func SchemaFor(variant roster.Variant) Schema {
	if variant == roster.Moderator {
		return ModeratorSchema
	}
	return StudentSchema
}

// Account export columns.
const (
	ColUserName  = "UserName"
	ColFirstName = "FirstName"
	ColLastName  = "LastName"
	ColOrgRoleID = "OrgRoleId"
)

// AccountColumns returns the required account columns of a variant.
func AccountColumns(variant roster.Variant) []string {
	cols := []string{ColUserName, ColFirstName, ColLastName}
	if variant == roster.Moderator {
		cols = append(cols, ColOrgRoleID)
	}
	return cols
}

// Course list columns.
const (
	ColCourseName = "Nombre"
	ColCourseNRC  = "NRC"
	ColPeriod     = "Periodo"
)

// CourseColumns are the course list columns in file order.
var CourseColumns = []string{ColCourseName, ColCourseNRC, ColPeriod}
