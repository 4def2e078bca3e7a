package export

import (
	"strconv"
	"time"

	"github.com/admin-nexus/internal/models"
)

// WaitlistColumns 候补名单导出列
var WaitlistColumns = []Column[models.WaitlistEntry]{
	{Header: "Email", Value: func(w models.WaitlistEntry) string { return w.Email }},
	{Header: "Status", Value: func(w models.WaitlistEntry) string { return w.Status }},
	{Header: "Source", Value: func(w models.WaitlistEntry) string { return w.Source }},
	{Header: "Created At", Value: func(w models.WaitlistEntry) string { return formatTime(w.CreatedAt) }},
}

// UserColumns 用户导出列
var UserColumns = []Column[models.User]{
	{Header: "Email", Value: func(u models.User) string { return u.Email }},
	{Header: "Username", Value: func(u models.User) string { return u.Username }},
	{Header: "Full Name", Value: func(u models.User) string { return u.FullName }},
	{Header: "Tier", Value: func(u models.User) string { return u.Tier }},
	{Header: "Total XP", Value: func(u models.User) string { return strconv.FormatInt(u.TotalXP, 10) }},
	{Header: "Total Earnings", Value: func(u models.User) string { return u.TotalEarnings.StringFixed(2) }},
	{Header: "Current Streak", Value: func(u models.User) string { return strconv.Itoa(u.CurrentStreak) }},
	{Header: "Created At", Value: func(u models.User) string { return formatTime(u.CreatedAt) }},
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
