package gigpack

import "github.com/iliyamo/gig-pack/internal/model"

// LineupUpdate rewrites the display fields of an existing lineup row.
type LineupUpdate struct {
	ID           string
	MusicianName *string
	Notes        *string
	SortOrder    int
}

// LineupPlan is the set of row operations that brings the stored lineup
// in line with an edited one.  Ops lists updates and inserts in the
// order of the incoming entries; Deletes is applied afterwards.
type LineupPlan struct {
	Ops     []LineupOp
	Deletes []string
}

// LineupOp is either an update of an existing row or an insert.
type LineupOp struct {
	Update *LineupUpdate
	Insert *model.LineupRole
}

// PlanLineup matches incoming entries to stored rows by role name.
//
// Each entry, in array order, takes the first not yet consumed row
// whose role_name equals the entry's role exactly (case-sensitive).  A
// matched row keeps its id, invitation, payment and musician/contact
// links; only musician name, notes and sort order change.  An entry
// without a match becomes a new pending row.  Rows left unconsumed are
// deleted.  A renamed role is therefore a delete plus an insert and
// loses its invitation and payment state.
func PlanLineup(gigID string, existing []model.LineupRole, incoming []LineupMember) LineupPlan {
	rows := stableBySortOrder(existing, func(r model.LineupRole) *int { return r.SortOrder })
	consumed := make([]bool, len(rows))

	var plan LineupPlan
	for i, in := range incoming {
		match := -1
		for j, row := range rows {
			if !consumed[j] && row.RoleName == in.Role {
				match = j
				break
			}
		}
		if match >= 0 {
			consumed[match] = true
			plan.Ops = append(plan.Ops, LineupOp{Update: &LineupUpdate{
				ID:           rows[match].ID,
				MusicianName: in.Name,
				Notes:        in.Notes,
				SortOrder:    i,
			}})
			continue
		}
		order := i
		plan.Ops = append(plan.Ops, LineupOp{Insert: &model.LineupRole{
			GigID:            gigID,
			RoleName:         in.Role,
			MusicianName:     in.Name,
			MusicianID:       in.MusicianID,
			ContactID:        in.ContactID,
			Notes:            in.Notes,
			InvitationStatus: model.InvitationPending,
			PaymentStatus:    model.PaymentUnpaid,
			SortOrder:        &order,
		}})
	}
	for j, row := range rows {
		if !consumed[j] {
			plan.Deletes = append(plan.Deletes, row.ID)
		}
	}
	return plan
}
