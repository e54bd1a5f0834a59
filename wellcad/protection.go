package wellcad

// Protection toggles are validated by the host; the password is forwarded as
// given.

// EnableProtection switches document protection on or off.
func (b *Borehole) EnableProtection(enable bool, password string) error {
	return b.run("EnableProtection", enable, password)
}

// AllowInsertLog permits or forbids inserting logs into a protected document.
func (b *Borehole) AllowInsertLog(enable bool, password string) error {
	return b.run("AllowInsertLog", enable, password)
}

// AllowSaveTemplate permits or forbids saving the layout as a template.
func (b *Borehole) AllowSaveTemplate(enable bool, password string) error {
	return b.run("AllowSaveTemplate", enable, password)
}

// AllowExportFile permits or forbids exporting the document.
func (b *Borehole) AllowExportFile(enable bool, password string) error {
	return b.run("AllowExportFile", enable, password)
}

// AllowModifyAnnotation permits or forbids editing annotations.
func (b *Borehole) AllowModifyAnnotation(enable bool, password string) error {
	return b.run("AllowModifyAnnotation", enable, password)
}

// AllowInsertAnnotation permits or forbids adding annotations.
func (b *Borehole) AllowInsertAnnotation(enable bool, password string) error {
	return b.run("AllowInsertAnnotation", enable, password)
}

// AllowModifyHeadersContent permits or forbids editing the header.
func (b *Borehole) AllowModifyHeadersContent(enable bool, password string) error {
	return b.run("AllowModifyHeadersContent", enable, password)
}
