// Package status models order lifecycle statuses as data rather than a closed enum.
//
// A Status is identified by an immutable Slug (for example PAID or AWAITING_PROOF) and
// carries a Definition with its presentation and behavior flags. Core statuses are
// seeded by migrations; they cannot be deleted and only a small whitelist of fields
// (description, emailTemplateId, sendEmailOnEnter, sortOrder) may be edited on them.
//
// Partial updates are expressed with Patch, whose Optional fields record which
// attributes the caller actually touched. Status.ApplyPatch rejects a patch that
// touches a protected field on a core status with errs.ForbiddenFieldEditError.
package status
