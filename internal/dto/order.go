package dto

import "time"

type SubmitDeliveryRequestDTO struct {
	Response   string `json:"response" example:"final files attached"`
	SourceFile string `json:"source_file" example:"delivery-v2.zip"`
}

type RevisionRequestDTO struct {
	Reason string `json:"reason" example:"the logo is missing from the header"`
}

type CancelRequestDTO struct {
	Reason string `json:"reason" example:"requirements changed"`
}

type ActivityResponseDTO struct {
	ID        int       `json:"id" example:"42"`
	Type      string    `json:"type" example:"DE"`
	CreatedAt time.Time `json:"created_at" example:"2026-08-09T16:09:57+03:00"`
}
