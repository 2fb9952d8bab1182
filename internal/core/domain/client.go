package domain

// Client is a studio customer. QRID is unique and identifies the client's card.
type Client struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	Allergies   string `json:"allergies,omitempty"`
	MedicalInfo string `json:"medical_info,omitempty"`
	QRID        string `json:"qr_id,omitempty"`
}

type ClientPatch struct {
	Name        *string
	Phone       *string
	Address     *string
	Allergies   *string
	MedicalInfo *string
	QRID        *string
}

func (p ClientPatch) Empty() bool {
	return p.Name == nil && p.Phone == nil && p.Address == nil &&
		p.Allergies == nil && p.MedicalInfo == nil && p.QRID == nil
}

func (p ClientPatch) Apply(c *Client) {
	setString(&c.Name, p.Name)
	setString(&c.Phone, p.Phone)
	setString(&c.Address, p.Address)
	setString(&c.Allergies, p.Allergies)
	setString(&c.MedicalInfo, p.MedicalInfo)
	setString(&c.QRID, p.QRID)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
