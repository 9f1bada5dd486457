// Package model はドメインモデルを定義する。
package model

import "slices"

// Activity は課外活動1件を表す。
// Participantsは申込順を保持する（末尾が最新の申込者）。
// MaxParticipantsは定員として保持するだけで、申込時に強制はしない。
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// HasParticipant は指定されたメールアドレスが参加者リストに含まれるかを返す。
// 活動数・参加者数ともに少数固定のため線形走査で十分。
func (a *Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

// Clone は参加者リストを複製したActivityのコピーを返す。
// 内部のスライスを呼び出し側に共有させないために使用する。
func (a *Activity) Clone() Activity {
	c := *a
	c.Participants = slices.Clone(a.Participants)
	return c
}
