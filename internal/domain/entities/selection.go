package entities

// Selection holds the chosen and the hovered skip ids. Both are optional.
type Selection struct {
	Selected *int `json:"selected"`
	Hovered  *int `json:"hovered"`
}

func (s Selection) HasSelection() bool {
	return s.Selected != nil
}

// IntPtr is a small helper for optional ids.
func IntPtr(v int) *int {
	return &v
}
