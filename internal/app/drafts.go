package app

import (
	"context"
)

// SaveDraft stores the text locally for later submission. Empty text is
// ignored, matching the draft store's gate.
func (a *App) SaveDraft(ctx context.Context, text string) error {
	if err := a.drafts.Add(ctx, text); err != nil {
		return a.guard(ctx, err)
	}
	return nil
}

// Drafts lists saved drafts in the order they were written.
func (a *App) Drafts(ctx context.Context) ([]string, error) {
	all, err := a.drafts.List(ctx)
	if err != nil {
		return nil, a.guard(ctx, err)
	}
	return all, nil
}

// DeleteDraft removes the first draft matching text by value.
func (a *App) DeleteDraft(ctx context.Context, text string) error {
	if err := a.drafts.Remove(ctx, text); err != nil {
		return a.guard(ctx, err)
	}
	return nil
}

// PromoteDraft submits a draft as a real post on the wall of ownerID. When
// editedText is non-empty it is submitted in place of the stored draft text.
// The draft is removed only once the post is confirmed created; a failed
// submission keeps the draft so the text is not silently lost.
func (a *App) PromoteDraft(ctx context.Context, ownerID, text, editedText string) error {
	toPost := text
	if len(editedText) != 0 {
		toPost = editedText
	}

	if err := a.CreatePost(ctx, ownerID, toPost); err != nil {
		return err
	}
	return a.DeleteDraft(ctx, text)
}
