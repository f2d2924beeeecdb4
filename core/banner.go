package core

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeLoading NoticeKind = "loading"
	NoticeError   NoticeKind = "error"
)

// Notice is a transient, user-visible message.
type Notice struct {
	Kind    NoticeKind `json:"type"`
	Message string     `json:"msg"`
}

// Banner is anything that can surface a Notice to the user.
// Loading notices stay until replaced; the others are expected to expire on their own.
type Banner interface {
	Show(kind NoticeKind, msg string)
}
