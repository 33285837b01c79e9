package geometry

// Size represents a width/height pair in cell units.
type Size struct {
	Width, Height int
}

// IsZero returns true if both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Max returns a Size with the larger of each dimension.
func (s Size) Max(other Size) Size {
	if other.Width > s.Width {
		s.Width = other.Width
	}
	if other.Height > s.Height {
		s.Height = other.Height
	}
	return s
}
