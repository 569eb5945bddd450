package entity

// Unit representa una unidad de medida (m, kg, und...).
type Unit struct {
	ID     int64
	Name   string
	Symbol string
}

// Category representa una categoría de materiales (cable, tubería, acero...).
// Jerarquía por ParentID; nil para categorías raíz. El write path rechaza
// ciclos en la cadena de padres.
type Category struct {
	ID       int64
	Name     string
	ParentID *int64
}

// Material representa un material de construcción con SKU único.
type Material struct {
	ID         int64
	SKU        string
	Name       string
	UnitID     int64
	CategoryID int64
}
