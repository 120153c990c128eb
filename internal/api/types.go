package api

import (
	"github.com/highcard-dev/companion/internal/core/domain"
)

type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
} // @name ErrorResponse

type UpdateCheckResponse struct {
	CurrentVersion   string  `json:"currentVersion"`
	LatestVersion    *string `json:"latestVersion"`
	UpdateAvailable  bool    `json:"updateAvailable"`
	IsServiceMode    bool    `json:"isServiceMode"`
	Channel          string  `json:"channel"`
	LastChecked      int64   `json:"lastChecked"` // unix milliseconds, 0 if never checked
	Checking         bool    `json:"checking"`
	UpdateInProgress bool    `json:"updateInProgress"`
} // @name UpdateCheckResponse

type UpdateResponse struct {
	Ok      bool   `json:"ok"`
	Message string `json:"message"`
} // @name UpdateResponse

type SettingsResponse struct {
	UpdateChannel string `json:"updateChannel"`
} // @name SettingsResponse

type UpdateSettingsRequest struct {
	UpdateChannel string `json:"updateChannel"`
} // @name UpdateSettingsRequest

const UpdateEventState = "update_state"

type UpdateEvent struct {
	Type  string              `json:"type"`
	State UpdateCheckResponse `json:"state"`
} // @name UpdateEvent

func NewUpdateCheckResponse(state domain.UpdateState, updateAvailable bool) UpdateCheckResponse {
	res := UpdateCheckResponse{
		CurrentVersion:   state.CurrentVersion,
		UpdateAvailable:  updateAvailable,
		IsServiceMode:    state.IsServiceMode,
		Channel:          string(state.Channel),
		Checking:         state.Checking,
		UpdateInProgress: state.UpdateInProgress,
	}
	if state.LatestVersion != "" {
		latest := state.LatestVersion
		res.LatestVersion = &latest
	}
	if !state.LastChecked.IsZero() {
		res.LastChecked = state.LastChecked.UnixMilli()
	}
	return res
}

func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{
		Status: "error",
		Error:  err.Error(),
	}
}
