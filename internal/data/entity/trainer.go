package entity

type Trainer struct {
	BaseSimple
	Name      string  `db:"name"`
	Specialty string  `db:"specialty"`
	Bio       *string `db:"bio"`
	ImageURL  *string `db:"image_url"`
}
