package dto

// AuthorRequest is the body of addAuthor and updateAuthor. AuthorImage, when
// present, is a "data:<mime>;base64,<data>" payload.
type AuthorRequest struct {
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	AuthorImage string `json:"authorImage"`
	AuthorURL   string `json:"authorUrl"`
}
