package get_summary

import "errors"

// ErrFetchFailed возвращается, когда не удалось получить брони за период
var ErrFetchFailed = errors.New("get_summary: fetch failed")
