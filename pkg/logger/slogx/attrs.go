package slogx

import "log/slog"

func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("err", "<nil>")
	}

	return slog.String("err", err.Error())
}

func UserId(id int64) slog.Attr {
	return slog.Int64("user_id", id)
}

func NoteId(id int64) slog.Attr {
	return slog.Int64("note_id", id)
}
