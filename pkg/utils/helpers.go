package utils

import (
	"database/sql"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

func NullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func NullTimeToEmptyString(nt sql.NullTime) string {
	if nt.Valid {
		return nt.Time.Local().Format(timeLayout)
	}
	return ""
}

func FormatTime(t time.Time) string {
	return t.Local().Format(timeLayout)
}

func FormatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format(timeLayout)
}

func Uint64Ptr(v uint64) *uint64 { return &v }
