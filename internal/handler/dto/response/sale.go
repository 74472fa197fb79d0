package response

import (
	"time"

	"flash-sale-api/internal/usecase/readmodel"
)

type SaleResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Remaining int32     `json:"remaining"`
	StartAt   time.Time `json:"startAt"`
	EndAt     time.Time `json:"endAt"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromSaleRM(rm *readmodel.SaleRM) *SaleResponse {
	return &SaleResponse{
		ID:        rm.ID,
		Name:      rm.Name,
		Remaining: rm.Remaining,
		StartAt:   rm.StartAt,
		EndAt:     rm.EndAt,
		CreatedAt: rm.CreatedAt,
	}
}

// ExposureResponse is either an open exposure carrying the token, or a closed
// one carrying the server clock and window bounds (unix millis) for countdown
// rendering.
type ExposureResponse struct {
	Exposed bool   `json:"exposed"`
	SaleID  int64  `json:"saleId"`
	Token   string `json:"token,omitempty"`
	Now     int64  `json:"now,omitempty"`
	StartAt int64  `json:"startAt,omitempty"`
	EndAt   int64  `json:"endAt,omitempty"`
}

func FromExposureRM(rm *readmodel.ExposureRM) *ExposureResponse {
	resp := &ExposureResponse{
		Exposed: rm.Exposed,
		SaleID:  rm.SaleID,
	}
	if rm.Exposed {
		resp.Token = rm.Token
		return resp
	}
	resp.Now = rm.Now.UnixMilli()
	resp.StartAt = rm.StartAt.UnixMilli()
	resp.EndAt = rm.EndAt.UnixMilli()
	return resp
}

// Execution outcome states, mirrored in the response body so clients can
// distinguish "you already won" from "try again later".
const (
	StateSuccess      = 1
	StateSaleClosed   = 0
	StateAlreadyWon   = -1
	StateInternalErr  = -2
	StateInvalidToken = -3
)

var stateInfo = map[int]string{
	StateSuccess:      "success",
	StateSaleClosed:   "sale is closed",
	StateAlreadyWon:   "already won",
	StateInternalErr:  "internal error",
	StateInvalidToken: "invalid request",
}

type WinRecordResponse struct {
	SaleID      int64     `json:"saleId"`
	RequesterID int64     `json:"requesterId"`
	SaleName    string    `json:"saleName"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ExecutionResponse struct {
	SaleID    int64              `json:"saleId"`
	State     int                `json:"state"`
	StateInfo string             `json:"stateInfo"`
	Win       *WinRecordResponse `json:"win,omitempty"`
}

func NewExecutionResponse(saleID int64, state int, win *readmodel.WinRecordRM) *ExecutionResponse {
	resp := &ExecutionResponse{
		SaleID:    saleID,
		State:     state,
		StateInfo: stateInfo[state],
	}
	if win != nil {
		resp.Win = &WinRecordResponse{
			SaleID:      win.SaleID,
			RequesterID: win.RequesterID,
			SaleName:    win.SaleName,
			CreatedAt:   win.CreatedAt,
		}
	}
	return resp
}

type TimeResponse struct {
	Now int64 `json:"now"`
}
