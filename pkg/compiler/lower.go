package compiler

import "fmt"

// Lower translates an analyzed program into IR, one instruction per
// statement. It makes no semantic decisions.
func Lower(prog *Program) ([]Instr, error) {
	return lowerStmts(prog.Stmts)
}

func lowerStmts(stmts []Stmt) ([]Instr, error) {
	if len(stmts) == 0 {
		return nil, nil
	}
	out := make([]Instr, 0, len(stmts))
	for _, s := range stmts {
		in, err := lowerStmt(s)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}

func lowerStmt(s Stmt) (Instr, error) {
	switch n := s.(type) {
	case *MoveStmt:
		return &MoveInstr{Distance: n.Distance}, nil
	case *TurnStmt:
		return &TurnInstr{Angle: n.Angle}, nil
	case *PenStmt:
		return &PenInstr{Up: n.Up}, nil
	case *ColorStmt:
		return &ColorInstr{Name: n.Name}, nil
	case *AssignStmt:
		return &AssignInstr{Name: n.Name, Value: n.Value}, nil
	case *PrintStmt:
		return &PrintInstr{Value: n.Value}, nil
	case *RepeatStmt:
		body, err := lowerStmts(n.Body)
		if err != nil {
			return nil, err
		}
		return &RepeatInstr{Count: n.Count, Body: body}, nil
	case *IfStmt:
		thenIR, err := lowerStmts(n.Then)
		if err != nil {
			return nil, err
		}
		elseIR, err := lowerStmts(n.Else)
		if err != nil {
			return nil, err
		}
		return &IfInstr{Cond: n.Condition, Then: thenIR, Else: elseIR}, nil
	}
	return nil, fmt.Errorf("lower: unknown statement %T", s)
}
