// Package directory は課外活動ディレクトリのドメインサービスを提供する。
package directory

import (
	"context"
	"sync"

	"github.com/mergington/activities/internal/model"
)

// MetricsRecorder はディレクトリ操作の結果を記録するインターフェース。
// メトリクス収集層から利用する。
type MetricsRecorder interface {
	RecordSignup(activityName string)
	RecordSignupRejected(reason string)
	RecordUnregister(activityName string)
	RecordUnregisterRejected(reason string)
}

// Service は活動名→Activityのマッピングを排他的に所有するドメインサービス。
// 公開する操作は一覧・申込・取消の3つのみで、内部のマップやスライスは
// 外部に共有しない。ミューテーションは単一のRWMutexで直列化する。
type Service struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
	metrics    MetricsRecorder
}

// NewService は初期データからServiceを生成する。
// 活動の追加・削除はプロセス起動後には行われない。
// metricsがnilの場合はメトリクスを記録しない。
func NewService(seed map[string]*model.Activity, metrics MetricsRecorder) *Service {
	activities := make(map[string]*model.Activity, len(seed))
	for name, a := range seed {
		c := a.Clone()
		activities[name] = &c
	}
	return &Service{
		activities: activities,
		metrics:    metrics,
	}
}

// List は全活動のスナップショットを返す。
// 参加者リストは複製して返すため、呼び出し側の変更は内部状態に影響しない。
func (s *Service) List(ctx context.Context) map[string]model.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string]model.Activity, len(s.activities))
	for name, a := range s.activities {
		snapshot[name] = a.Clone()
	}
	return snapshot
}

// Signup は指定された活動の参加者リスト末尾にメールアドレスを追加する。
// 活動が存在しない場合はActivityNotFound、既に申込済みの場合は
// AlreadySignedUpエラーを返す。定員（MaxParticipants）は検査しない。
func (s *Service) Signup(ctx context.Context, activityName, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[activityName]
	if !ok {
		s.recordSignupRejected("not_found")
		return model.NewActivityNotFoundError()
	}

	if activity.HasParticipant(email) {
		s.recordSignupRejected("duplicate")
		return model.NewAlreadySignedUpError()
	}

	activity.Participants = append(activity.Participants, email)

	if s.metrics != nil {
		s.metrics.RecordSignup(activityName)
	}
	return nil
}

// Unregister は指定された活動の参加者リストからメールアドレスを取り除く。
// 活動が存在しない場合はActivityNotFound、未登録の場合は
// NotRegisteredエラーを返す。
func (s *Service) Unregister(ctx context.Context, activityName, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[activityName]
	if !ok {
		s.recordUnregisterRejected("not_found")
		return model.NewActivityNotFoundError()
	}

	idx := -1
	for i, p := range activity.Participants {
		if p == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.recordUnregisterRejected("not_registered")
		return model.NewNotRegisteredError()
	}

	activity.Participants = append(activity.Participants[:idx], activity.Participants[idx+1:]...)

	if s.metrics != nil {
		s.metrics.RecordUnregister(activityName)
	}
	return nil
}

func (s *Service) recordSignupRejected(reason string) {
	if s.metrics != nil {
		s.metrics.RecordSignupRejected(reason)
	}
}

func (s *Service) recordUnregisterRejected(reason string) {
	if s.metrics != nil {
		s.metrics.RecordUnregisterRejected(reason)
	}
}
