// Package quill is the Composition Root for the Quill library.
//
// It connects the core document model (Domain Layer) with the
// filesystem store (Persistence Layer) and the boundary codecs for
// character encodings, line endings, encryption and asset tracking.
//
// Philosophy:
//
// Quill is the persistence seam for text editors. It owns the gap
// between the bytes on disk and the canonical document an editor wants
// to work on: UTF-8 content with bare LF line endings, plus enough
// formatting metadata to reconstruct the original byte convention on
// save. What the file looked like is a property of the document, not
// something the editor has to remember.
//
// Features:
//
//   - **Encoding Detection**: BOM-based and heuristic charset detection,
//     transparent decode/encode on the way in and out.
//   - **Line Ending Fidelity**: Detects LF/CRLF (including mixed files),
//     normalizes in memory, reconstitutes on save.
//   - **Trailing Newline Policy**: Classifies the file's trailing-newline
//     convention and reapplies it when writing.
//   - **Secure Files**: Extension-triggered authenticated encryption for
//     documents that should never touch disk in plaintext.
//   - **Asset Tracking**: Scans markdown for asset references and reports
//     orphaned files in the document's asset directory as deletion
//     candidates. Deletion always stays with the caller.
//   - **Atomic Writes**: Saves go through a temp file and rename.
//   - **External Change Watch**: Debounced filesystem events, with the
//     store's own saves filtered out.
//
// Usage:
//
//	svc, err := quill.New("./notes",
//		quill.WithPassphrase(os.Getenv("QUILL_PASSPHRASE")),
//		quill.WithLogger(logger),
//	)
//
//	doc, err := svc.LoadDocument(ctx, "./notes/todo.md", quill.LoadOptions{})
//	doc.Content += "\n- ship it\n"
//	orphans, err := svc.SaveDocument(ctx, doc)
package quill
