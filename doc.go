/*
Package inix parses and writes Inix files, the extended INI dialect used by
simulation and game configuration (for example Assetto Corsa setups).

An Inix file is a sequence of lines of three kinds, decided by the first
character of the line:

	[HEADER] ; optional header comment
	KEY=VALUE ; optional inline comment
	; standalone comment
	// standalone comment

Parsing never stops at a malformed line. Headers without a closing bracket
and property lines without "=" are recorded on the returned Document and
skipped, so a document with errors still holds everything that parsed:

	doc := inix.ParseFile("setup.ini")
	if doc.HasErrors() {
		for _, msg := range doc.Errors() {
			log.Println(msg)
		}
	}

	camber, err := doc.Header("CAMBER_RF")
	if err != nil {
		// handle error; errors.Is(err, inix.ErrKeyNotFound)
	}
	min, _ := camber.Value("MIN")

The Document keeps headers and standalone comments in file order, so it can
be written back with its comments intact:

	fmt.Print(inix.Serialize(doc))

The reconstruction is canonical rather than byte-exact: keys, values and
comments are trimmed, inline comments are written as " ; comment" and a blank
line follows every section and standalone comment.

Values are always strings. DecodeHeader copies a section into a struct of
string fields, and the export package converts documents to TOML, YAML, JSON
and MessagePack.
*/
package inix
