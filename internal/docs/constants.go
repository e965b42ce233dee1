package docs

const (
	// DescriptionFallback is used when a file has no documentation comment block.
	DescriptionFallback = "Source file."
	// TooLargeDescription is used when a file exceeds the size ceiling.
	TooLargeDescription = "File too large (>5MB)"

	accessDeniedDescriptionFormat = "Access denied (%s)"
	unexpectedErrorFormat         = "Error: %s"
	recoveredPanicFormat          = "%v"
	extractionFailureLogMessage   = "symbol extraction degraded"

	// Failure categories embedded in access-denied descriptions.
	failureCategoryPermission = "PermissionError"
	failureCategoryNotFound   = "FileNotFoundError"
	failureCategoryOS         = "OSError"

	identifierExpression = `[a-zA-Z_$][\w$]*`
)
