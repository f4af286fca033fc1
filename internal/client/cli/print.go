package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/usersvc/internal/server/models"
)

const timeLayout = "2006-01-02 15:04"

func roleList(roles []models.Role) string {
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = string(r)
	}
	return strings.Join(parts, ",")
}

func state(deletedAt *time.Time) string {
	if deletedAt != nil {
		return "disabled"
	}
	return "active"
}

func printUser(w io.Writer, u *models.UserProfile) {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", u.ID)
	fmt.Fprintf(tw, "Username:\t%s\n", u.Username)
	fmt.Fprintf(tw, "Email:\t%s\n", u.Email)
	fmt.Fprintf(tw, "Roles:\t%s\n", roleList(u.Roles))
	fmt.Fprintf(tw, "State:\t%s\n", state(u.DeletedAt))
	fmt.Fprintf(tw, "Created:\t%s\n", u.CreatedAt.Format(timeLayout))
	if u.Creator != nil {
		fmt.Fprintf(tw, "Created by:\t%s (%s)\n", u.Creator.Username, u.Creator.ID)
	}
	_ = tw.Flush()
}

func printUsers(w io.Writer, list *models.UserList, showState bool) {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	if showState {
		fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tROLES\tSTATE")
	} else {
		fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tROLES")
	}
	for _, u := range list.Data {
		if showState {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Username, u.Email, roleList(u.Roles), state(u.DeletedAt))
		} else {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", u.ID, u.Username, u.Email, roleList(u.Roles))
		}
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "page %d of %d, %d users\n", list.Meta.Page, list.Meta.LastPage, list.Meta.Total)
}

func printCreated(w io.Writer, created []models.CreatedUser) {
	if len(created) == 0 {
		fmt.Fprintln(w, "Created no users")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "CREATED\tID\tUSERNAME\tEMAIL")
	for _, c := range created {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.CreatedAt.Format(timeLayout), c.ID, c.Username, c.Email)
	}
	_ = tw.Flush()
}

func printSummaries(w io.Writer, summaries []models.UserSummary) {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.ID, s.Username, s.Email)
	}
	_ = tw.Flush()
}
