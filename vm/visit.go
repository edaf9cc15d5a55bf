package vm

import (
	"unsafe"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("alchemy.vm")

// Visitor receives the decoded native value of whichever kind is live
// in a cell. Exactly one arm fires per Visit call; nil arms are simply
// skipped.
//
// There is no Bool arm. The dispatch set covers the kinds operations
// combine over, so boolean cells take the fallback path along with
// corrupt tags.
type Visitor struct {
	TypeID    func(id TypeID)
	Null      func()
	Int       func(n int32)
	UInt      func(n uint32)
	Float     func(f float32)
	Reference func(p unsafe.Pointer)
	Double    func(d float64)
}

// Visit decodes the live kind of v and invokes the matching arm.
//
// A short-layout tag outside the dispatch set never fails hard: it is
// reported through the package logger and dispatched as null. Callers
// that need to reject such cells check the live kind up front.
func (v Value) Visit(vis Visitor) {
	if v.IsShortLayout() {
		switch v.shortTag() {
		case tagType:
			if vis.TypeID != nil {
				vis.TypeID(v.TypeID())
			}
		case tagNull:
			if vis.Null != nil {
				vis.Null()
			}
		case tagInt:
			if vis.Int != nil {
				vis.Int(v.Int())
			}
		case tagUInt:
			if vis.UInt != nil {
				vis.UInt(v.UInt())
			}
		case tagFloat:
			if vis.Float != nil {
				vis.Float(v.Float())
			}
		default:
			log.Warningf("unhandled tag %#08x, dispatching cell as null", v.shortTag())
			if vis.Null != nil {
				vis.Null()
			}
		}
		return
	}

	if v.IsReferenceLayout() {
		if vis.Reference != nil {
			vis.Reference(v.Reference())
		}
		return
	}

	if vis.Double != nil {
		vis.Double(v.Double())
	}
}
