package gigpack

import (
	"context"

	"github.com/iliyamo/gig-pack/internal/model"
)

// musicianLookups splits lineup rows into the two batched profile
// lookups: ids for rows linked to a user, names for free-text rows
// with neither a user nor a contact.
func musicianLookups(roles []model.LineupRole) (ids, names []string) {
	seenID := map[string]bool{}
	seenName := map[string]bool{}
	for _, r := range roles {
		switch {
		case r.MusicianID != nil && *r.MusicianID != "":
			if !seenID[*r.MusicianID] {
				seenID[*r.MusicianID] = true
				ids = append(ids, *r.MusicianID)
			}
		case r.ContactID == nil && r.MusicianName != nil && *r.MusicianName != "":
			if !seenName[*r.MusicianName] {
				seenName[*r.MusicianName] = true
				names = append(names, *r.MusicianName)
			}
		}
	}
	return ids, names
}

// resolveMusicians loads the profiles needed by roles with at most two
// store queries and returns the id and name lookup maps.
func resolveMusicians(ctx context.Context, store ProfileReader, roles []model.LineupRole) (byID, byName map[string]model.Profile, err error) {
	byID = map[string]model.Profile{}
	byName = map[string]model.Profile{}
	ids, names := musicianLookups(roles)
	if len(ids) > 0 {
		profiles, err := store.ProfilesByIDs(ctx, ids)
		if err != nil {
			return nil, nil, err
		}
		for _, p := range profiles {
			byID[p.ID] = p
		}
	}
	if len(names) > 0 {
		profiles, err := store.ProfilesByNames(ctx, names)
		if err != nil {
			return nil, nil, err
		}
		for _, p := range profiles {
			if _, dup := byName[p.Name]; !dup {
				byName[p.Name] = p
			}
		}
	}
	return byID, byName, nil
}

// contactDetails fills email, phone and avatar of a member from the
// first source that knows the musician: the linked profile, a profile
// with the same name, then the attached contact.
func contactDetails(m *LineupMember, r model.LineupRole, byID, byName map[string]model.Profile) {
	if r.MusicianID != nil {
		if p, ok := byID[*r.MusicianID]; ok {
			m.Email, m.Phone, m.AvatarURL = p.Email, p.Phone, p.AvatarURL
			return
		}
	}
	if r.MusicianName != nil {
		if p, ok := byName[*r.MusicianName]; ok {
			m.Email, m.Phone, m.AvatarURL = p.Email, p.Phone, p.AvatarURL
			return
		}
	}
	if r.ContactEmail != nil || r.ContactPhone != nil {
		m.Email, m.Phone = r.ContactEmail, r.ContactPhone
	}
}
