package safe

// MissingErrorMessage is observed in place of a failure message that could not
// be recovered.
const MissingErrorMessage = "Unable to recover error message"
