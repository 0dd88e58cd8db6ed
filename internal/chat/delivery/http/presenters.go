package http

import (
	"taskflow-pro/internal/chat"
	"taskflow-pro/internal/model"
	"taskflow-pro/pkg/response"
	"taskflow-pro/pkg/taskparse"
)

type messageReq struct {
	Text string `json:"text" binding:"required"`
}

type messageResp struct {
	ID        string            `json:"id"`
	Role      string            `json:"role"`
	Text      string            `json:"text"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newMessageResp(m model.ChatMessage) messageResp {
	return messageResp{ID: m.ID, Role: string(m.Role), Text: m.Text, CreatedAt: response.DateTime(m.CreatedAt)}
}

type actionResp struct {
	Type    string              `json:"type"`
	Payload taskparse.TaskDraft `json:"payload"`
	TaskID  string              `json:"task_id"`
}

type replyResp struct {
	Reply  messageResp `json:"reply"`
	Intent string      `json:"intent"`
	Action *actionResp `json:"action"`
}

func newReplyResp(out chat.ReplyOutput) replyResp {
	resp := replyResp{Reply: newMessageResp(out.Message), Intent: string(out.Intent)}
	if out.Action != nil {
		resp.Action = &actionResp{Type: out.Action.Type, Payload: out.Action.Draft, TaskID: out.Action.Task.ID}
	}
	return resp
}

type historyResp struct {
	Messages []messageResp `json:"messages"`
}

func newHistoryResp(msgs []model.ChatMessage) historyResp {
	resp := historyResp{Messages: make([]messageResp, 0, len(msgs))}
	for _, m := range msgs {
		resp.Messages = append(resp.Messages, newMessageResp(m))
	}
	return resp
}
