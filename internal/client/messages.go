package client

import (
	"errors"

	"jindam_vocab/internal/model"
)

// ユーザーに表示するメッセージ
const (
	MessageEmptyWord    = "중국어 단어를 입력해주세요"
	MessageDisconnected = "백엔드 서버에 연결할 수 없습니다. 서버를 실행한 뒤 다시 시도해주세요."
	MessageQuota        = "API 사용량 제한에 도달했습니다. 잠시 후 다시 시도해주세요."
	MessageNoExamples   = "API에서 예문을 생성하지 못했습니다. 다시 시도해주세요."
	MessageNothingSaved = "저장할 단어나 예문이 없습니다."
	MessageServerError  = "서버 오류"
)

// UserMessage はエラーを表示用のメッセージ1つに変換します。
// 古い応答 (ErrStaleResponse) は表示しないので空文字列
func UserMessage(err error) string {
	var upstreamErr *model.UpstreamError
	switch {
	case err == nil, errors.Is(err, ErrStaleResponse):
		return ""
	case errors.Is(err, ErrEmptyWord):
		return MessageEmptyWord
	case errors.Is(err, ErrNothingToSave):
		return MessageNothingSaved
	case errors.Is(err, ErrNoExamples):
		return MessageNoExamples
	case errors.Is(err, ErrDisconnected), errors.Is(err, model.ErrConnectivity):
		return MessageDisconnected
	case errors.Is(err, model.ErrUpstreamQuota):
		return MessageQuota
	case errors.As(err, &upstreamErr) && upstreamErr.Message != "":
		return upstreamErr.Message
	default:
		return MessageServerError
	}
}
