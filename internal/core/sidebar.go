package core

import "sort"

// SidebarItem is one link in the docs sidebar.
type SidebarItem struct {
	Title  string
	Route  string
	Active bool
}

// Pagination holds the previous/next links rendered at the bottom of a doc
// page. Nil ends mean the active doc is first or last in the series.
type Pagination struct {
	Prev *SidebarItem
	Next *SidebarItem
}

// SortDocs orders documents for display: sidebar_position first, title as
// the tie breaker. The sort is stable so equal docs keep source order.
func SortDocs(docs []DocPage) {
	sort.SliceStable(docs, func(i, j int) bool {
		if docs[i].Position != docs[j].Position {
			return docs[i].Position < docs[j].Position
		}
		return docs[i].Title < docs[j].Title
	})
}

// BuildSidebar produces the sidebar for a page. activeSlug may be empty
// (homepage) in which case no item is marked active.
func BuildSidebar(docs []DocPage, activeSlug string) []SidebarItem {
	items := make([]SidebarItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, SidebarItem{
			Title:  doc.Title,
			Route:  DocRoute(doc.Slug),
			Active: doc.Slug == activeSlug,
		})
	}
	return items
}

// Paginate locates activeSlug within the ordered docs and returns its
// neighbors.
func Paginate(docs []DocPage, activeSlug string) Pagination {
	for i, doc := range docs {
		if doc.Slug != activeSlug {
			continue
		}

		var p Pagination
		if i > 0 {
			p.Prev = &SidebarItem{Title: docs[i-1].Title, Route: DocRoute(docs[i-1].Slug)}
		}
		if i < len(docs)-1 {
			p.Next = &SidebarItem{Title: docs[i+1].Title, Route: DocRoute(docs[i+1].Slug)}
		}
		return p
	}
	return Pagination{}
}
