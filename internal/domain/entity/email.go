package entity

import "time"

// EmailFolder is the folder an email currently lives in. Transitions: any
// folder -> Trash (soft delete); deleting again while in Trash removes the
// email permanently. Compose creates directly in Sent; nothing moves mail
// into Drafts or Inbox programmatically.
type EmailFolder string

const (
	FolderInbox  EmailFolder = "Inbox"
	FolderSent   EmailFolder = "Sent"
	FolderDrafts EmailFolder = "Drafts"
	FolderTrash  EmailFolder = "Trash"
)

// EmailFolders returns the fixed enum domain in declaration order.
func EmailFolders() []EmailFolder {
	return []EmailFolder{FolderInbox, FolderSent, FolderDrafts, FolderTrash}
}

// IsValid checks if the EmailFolder is a valid value.
func (f EmailFolder) IsValid() bool {
	switch f {
	case FolderInbox, FolderSent, FolderDrafts, FolderTrash:
		return true
	default:
		return false
	}
}

// Email is a mail item. From/To are display names, not user ids. IsRead
// flips to true the first time the email is opened and never reverts.
type Email struct {
	ID      string      `json:"id"`
	From    string      `json:"from"`
	To      string      `json:"to"`
	Subject string      `json:"subject"`
	Body    string      `json:"body"`
	Date    time.Time   `json:"date"`
	IsRead  bool        `json:"isRead"`
	Folder  EmailFolder `json:"folder"`
}
