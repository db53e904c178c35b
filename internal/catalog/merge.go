package catalog

import "soupshoppe/internal/models"

// Merge reconciles the seed catalog with the server's custom items, the
// generated-image overlay, and any caller-local items that have not yet
// round-tripped to the server. It is a pure function; inputs are not
// modified.
//
// Precedence, highest first:
//  1. server custom item (its copy of a known id wins outright)
//  2. generated-image overlay (imageUrl only)
//  3. seed default
//
// Unknown local items are retained verbatim at the end of the list. This is
// plain "server wins for known ids, keep local for unknown ids"; there is no
// timestamp or version tie-break.
func Merge(seed, serverCustom []models.MenuItem, images []models.GeneratedImage, local []models.MenuItem) []models.MenuItem {
	imageByID := make(map[string]string, len(images))
	for _, img := range images {
		imageByID[img.ItemID] = img.ImageURL
	}

	serverByID := make(map[string]models.MenuItem, len(serverCustom))
	for _, it := range serverCustom {
		serverByID[it.ID] = it
	}

	seedIDs := make(map[string]bool, len(seed))
	out := make([]models.MenuItem, 0, len(seed)+len(serverCustom)+len(local))

	for _, it := range seed {
		seedIDs[it.ID] = true
		if srv, ok := serverByID[it.ID]; ok && srv.ImageURL != nil && *srv.ImageURL != "" {
			it.ImageURL = srv.ImageURL
		} else if url, ok := imageByID[it.ID]; ok {
			it.ImageURL = &url
		}
		out = append(out, it)
	}

	localOnly := make([]models.MenuItem, 0, len(local))
	for _, it := range local {
		if seedIDs[it.ID] {
			continue
		}
		if _, ok := serverByID[it.ID]; ok {
			continue
		}
		localOnly = append(localOnly, it)
	}

	appendCustom := func(it models.MenuItem) {
		if it.ImageURL == nil || *it.ImageURL == "" {
			if url, ok := imageByID[it.ID]; ok {
				it.ImageURL = &url
			}
		}
		out = append(out, it)
	}

	for _, it := range serverCustom {
		if seedIDs[it.ID] {
			continue
		}
		appendCustom(it)
	}
	for _, it := range localOnly {
		appendCustom(it)
	}

	return out
}
