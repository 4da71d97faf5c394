// Package fdformat provides the small token types shared by every codec
// layer: the value-kind enumeration, the outer document tags, and the
// FFD-domain enumerations referenced by individual field entries.
package fdformat

// Kind identifies the logical value type stored under a tag, independent of
// its padding policy. It is the dispatch key the value codec switches on.
type Kind uint8

const (
	KindBool       Kind = iota + 1 // 1 byte, 0/1
	KindU8                         // 1 byte unsigned integer
	KindU16                        // little-endian unsigned integer, variable truncated length
	KindU32                        // little-endian unsigned integer, variable truncated length
	KindU64                        // little-endian unsigned integer, variable truncated length
	KindBytes                      // opaque byte string
	KindString                     // UTF-8 (treated opaque, no transcoding)
	KindFixedBytes                 // exactly N bytes
	KindVarFloat                   // variable-precision decimal
	KindDateTime                   // 4-byte LE unix seconds, local wall-clock
	KindDate                       // same encoding, date-only interpretation
	KindEnum                       // 1-byte discriminant or bitset
	KindObject                     // recursive nested TLV stream
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindU8:
		return "U8"
	case KindU16:
		return "U16"
	case KindU32:
		return "U32"
	case KindU64:
		return "U64"
	case KindBytes:
		return "Bytes"
	case KindString:
		return "String"
	case KindFixedBytes:
		return "FixedBytes"
	case KindVarFloat:
		return "VarFloat"
	case KindDateTime:
		return "DateTime"
	case KindDate:
		return "Date"
	case KindEnum:
		return "Enum"
	case KindObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// IsNumeric reports whether the kind is trimmed (rather than preserved) by
// Right-padding on decode, per the canonical fdpad.Policy.Trim rule.
func (k Kind) IsNumeric() bool {
	switch k {
	case KindBool, KindU8, KindU16, KindU32, KindU64, KindEnum, KindDateTime, KindDate:
		return true
	default:
		return false
	}
}

// DocTag identifies a top-level document variant by its constant leading tag.
type DocTag uint16

const (
	DocRegistrationReport            DocTag = 1
	DocShiftStartReport              DocTag = 2
	DocReceipt                       DocTag = 3
	DocBso                           DocTag = 4
	DocShiftEndReport                DocTag = 5
	DocFnCloseReport                 DocTag = 6
	DocRegistrationParamUpdateReport DocTag = 11
	DocPaymentStateReport            DocTag = 21
	DocCorrectionReceipt             DocTag = 31
	DocCorrectionBso                 DocTag = 41
	DocMarkingCodeRequest            DocTag = 81
	DocMarkedProductSaleNotification DocTag = 82
	DocMarkingResponse               DocTag = 83
	DocNotificationReceipt           DocTag = 84
)

func (t DocTag) String() string {
	switch t {
	case DocRegistrationReport:
		return "RegistrationReport"
	case DocShiftStartReport:
		return "ShiftStartReport"
	case DocReceipt:
		return "Receipt"
	case DocBso:
		return "Bso"
	case DocShiftEndReport:
		return "ShiftEndReport"
	case DocFnCloseReport:
		return "FnCloseReport"
	case DocRegistrationParamUpdateReport:
		return "RegistrationParamUpdateReport"
	case DocPaymentStateReport:
		return "PaymentStateReport"
	case DocCorrectionReceipt:
		return "CorrectionReceipt"
	case DocCorrectionBso:
		return "CorrectionBso"
	case DocMarkingCodeRequest:
		return "MarkingCodeRequest"
	case DocMarkedProductSaleNotification:
		return "MarkedProductSaleNotification"
	case DocMarkingResponse:
		return "MarkingResponse"
	case DocNotificationReceipt:
		return "NotificationReceipt"
	default:
		return "Unknown"
	}
}
