package page

import "fmt"

// Kind 操作类型
type Kind string

const (
	KindLoad   Kind = "load"
	KindCreate Kind = "create"
	KindUpdate Kind = "update"
	KindDelete Kind = "delete"
	KindSearch Kind = "search"
	KindExport Kind = "export"
	KindBulk   Kind = "bulk_delete"
)

// Toast 一次性提示
type Toast struct {
	Kind        Kind
	Title       string
	Description string
	Destructive bool
}

func failureToast(kind Kind, plural, singular string) Toast {
	var desc string
	switch kind {
	case KindLoad:
		desc = fmt.Sprintf("Failed to load %s", plural)
	case KindSearch:
		desc = fmt.Sprintf("Failed to search %s", plural)
	case KindExport:
		desc = fmt.Sprintf("Failed to export %s", plural)
	case KindBulk:
		desc = fmt.Sprintf("Some %s could not be deleted", plural)
	default:
		desc = fmt.Sprintf("Failed to %s %s", kind, singular)
	}
	return Toast{Kind: kind, Title: "Error", Description: desc, Destructive: true}
}

func successToast(kind Kind, plural, singular string) Toast {
	var title, desc string
	switch kind {
	case KindCreate:
		title, desc = "Created", fmt.Sprintf("The %s was created successfully", singular)
	case KindUpdate:
		title, desc = "Updated", fmt.Sprintf("The %s was updated successfully", singular)
	case KindDelete:
		title, desc = "Deleted", fmt.Sprintf("The %s was deleted successfully", singular)
	case KindBulk:
		title, desc = "Deleted", fmt.Sprintf("Selected %s were deleted", plural)
	case KindExport:
		title, desc = "Exported", fmt.Sprintf("%s exported", plural)
	}
	return Toast{Kind: kind, Title: title, Description: desc}
}
