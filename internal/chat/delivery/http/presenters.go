package http

import (
	"pixel-recruiter/internal/chat"
	"pixel-recruiter/internal/model"
)

// --- Request DTOs ---

type askReq struct {
	Question string `json:"question" binding:"required,max=1000"`
}

func (r askReq) toInput() chat.AskInput {
	return chat.AskInput{
		Question: r.Question,
	}
}

// --- Response DTOs ---

type askResp struct {
	Answer          string         `json:"answer"`
	Actions         []model.Action `json:"actions"`
	DurationSeconds float64        `json:"duration_seconds"`
}

func (h *handler) newAskResp(out chat.AskOutput) askResp {
	return askResp{
		Answer:          out.Answer,
		Actions:         out.Actions,
		DurationSeconds: out.Duration,
	}
}
