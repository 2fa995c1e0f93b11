package model

import (
	"errors"
	"go/ast"
	"go/token"

	"github.com/mohae/deepcopy"
)

// ErrResolvedTree is returned when a file was parsed with object resolution.
// Resolved identifiers form a cyclic graph that cannot be deep-copied.
var ErrResolvedTree = errors.New("program tree must be parsed with parser.SkipObjectResolution")

// ProgramTree is a parsed Go file. It is immutable by convention: mutation
// always happens on a Clone.
type ProgramTree struct {
	Path Path
	Fset *token.FileSet
	File *ast.File
}

// NewProgramTree wraps a parsed file.
func NewProgramTree(path Path, fset *token.FileSet, file *ast.File) (*ProgramTree, error) {
	if file == nil || fset == nil {
		return nil, errors.New("program tree requires a file and a file set")
	}

	if file.Scope != nil || len(file.Unresolved) > 0 {
		return nil, ErrResolvedTree
	}

	return &ProgramTree{Path: path, Fset: fset, File: file}, nil
}

// Clone returns an independent deep copy of the tree. Positions stay valid
// against the shared, read-only file set.
func (t *ProgramTree) Clone() *ProgramTree {
	file, _ := deepcopy.Copy(t.File).(*ast.File)

	return &ProgramTree{
		Path: t.Path,
		Fset: t.Fset,
		File: file,
	}
}

// Line returns the source line of n, or 0 when it has no position.
func (t *ProgramTree) Line(n ast.Node) int {
	if n == nil || !n.Pos().IsValid() {
		return 0
	}

	return t.Fset.Position(n.Pos()).Line
}

// NodeKind is the closed set of node kinds an operator can register a
// mutation handler for.
type NodeKind int

// Node kinds.
const (
	KindOther NodeKind = iota
	KindBinaryExpr
	KindUnaryExpr
	KindIdent
	KindBasicLit
	KindExprStmt
	KindIfStmt
	KindReturnStmt
	KindIncDecStmt
	KindAssignStmt
)

var nodeKindNames = map[NodeKind]string{
	KindOther:      "other",
	KindBinaryExpr: "binary_expr",
	KindUnaryExpr:  "unary_expr",
	KindIdent:      "ident",
	KindBasicLit:   "basic_lit",
	KindExprStmt:   "expr_stmt",
	KindIfStmt:     "if_stmt",
	KindReturnStmt: "return_stmt",
	KindIncDecStmt: "inc_dec_stmt",
	KindAssignStmt: "assign_stmt",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}

	return "unknown"
}

// KindOf classifies a Go syntax node. It is the only place where concrete
// ast types are inspected on behalf of operators.
func KindOf(n ast.Node) NodeKind {
	switch n.(type) {
	case *ast.BinaryExpr:
		return KindBinaryExpr
	case *ast.UnaryExpr:
		return KindUnaryExpr
	case *ast.Ident:
		return KindIdent
	case *ast.BasicLit:
		return KindBasicLit
	case *ast.ExprStmt:
		return KindExprStmt
	case *ast.IfStmt:
		return KindIfStmt
	case *ast.ReturnStmt:
		return KindReturnStmt
	case *ast.IncDecStmt:
		return KindIncDecStmt
	case *ast.AssignStmt:
		return KindAssignStmt
	default:
		return KindOther
	}
}
