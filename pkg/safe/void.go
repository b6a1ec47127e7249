package safe

// Void is the value type of steps that produce nothing. All Void values are equal.
type Void struct{}

// Unit is the Void value handed out by action-shaped steps.
var Unit = Void{}

func (Void) String() string {
	return "[Unit]"
}
