// Package project holds the scaffolding pipeline: the fixed project-type
// table, request construction (title validation, slug, date and author
// resolution) and the writer that renders a template set onto disk.
//
// The pipeline is a single pass per invocation:
//
//	req, err := project.NewRequest(title, typeCode, author, baseDir, time.Now())
//	set, err := templates.Resolve(opts, req.Type.TemplateFile, req.Slug)
//	res, err := project.Write(req, set)
//
// Failures are sentinel errors (ErrUnknownType, ErrInvalidTitle,
// ErrDestinationExists) so the CLI can map them to exit codes.
package project
