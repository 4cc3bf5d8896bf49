package dto

// GiftCreateResponse is returned after a gift listing is stored
type GiftCreateResponse struct {
	InsertedID string `json:"insertedId"`
}
