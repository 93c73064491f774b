package interp

// Surface is the drawing collaborator the interpreter drives. Calls are
// synchronous and made in program order.
type Surface interface {
	Forward(distance float64)
	TurnRight(degrees float64)
	PenUp()
	PenDown()
	SetColor(name string)
	EmitText(text string)
}
