package dto

type VerifyPassRequest struct {
	Pass string `example:"s3cret" json:"pass"`
}
