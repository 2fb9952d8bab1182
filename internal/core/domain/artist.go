package domain

// Artist is a tattoo artist working at the studio. Email is optional but unique.
type Artist struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

type ArtistPatch struct {
	Name      *string
	Phone     *string
	Email     *string
	Bio       *string
	Portfolio *string
}

func (p ArtistPatch) Empty() bool {
	return p.Name == nil && p.Phone == nil && p.Email == nil && p.Bio == nil && p.Portfolio == nil
}

func (p ArtistPatch) Apply(a *Artist) {
	setString(&a.Name, p.Name)
	setString(&a.Phone, p.Phone)
	setString(&a.Email, p.Email)
	setString(&a.Bio, p.Bio)
	setString(&a.Portfolio, p.Portfolio)
}
