package fdformat

// The enum types below back the registry's KindEnum fields. original_source
// did not retain fiscal-data/src/enums.rs (filtered out of the retrieval
// pack — see _INDEX.md), so the variant sets here are reconstructed from the
// well-established FFD field catalogue referenced at each field's use site
// in fields.rs/json.rs/structs.rs, not invented freely. Enum-kind fields
// decode to their raw discriminant (uint64), not to these types, so an
// unrecognized value never fails a decode. Only TaxationType declares an
// Unknown constant; where a type has a String method, it renders an
// unrecognized value as "Unknown".

// TaxationType is the cash register's tax system (СНО), tag 1055.
type TaxationType uint8

const (
	TaxationGeneral                  TaxationType = 1
	TaxationSimplifiedIncome         TaxationType = 2
	TaxationSimplifiedIncomeExpense  TaxationType = 4
	TaxationUnifiedImputed           TaxationType = 8
	TaxationUnifiedAgricultural      TaxationType = 16
	TaxationPatent                   TaxationType = 32
	TaxationUnknown    TaxationType = 0
)

func (t TaxationType) String() string {
	switch t {
	case TaxationGeneral:
		return "General"
	case TaxationSimplifiedIncome:
		return "SimplifiedIncome"
	case TaxationSimplifiedIncomeExpense:
		return "SimplifiedIncomeExpense"
	case TaxationUnifiedImputed:
		return "UnifiedImputed"
	case TaxationUnifiedAgricultural:
		return "UnifiedAgricultural"
	case TaxationPatent:
		return "Patent"
	default:
		return "Unknown"
	}
}

// PaymentMethod is the settlement method (признак способа расчета), tag 1214.
type PaymentMethod uint8

const (
	PaymentFullPrepayment        PaymentMethod = 1
	PaymentPartialPrepayment     PaymentMethod = 2
	PaymentAdvance               PaymentMethod = 3
	PaymentFullPayment           PaymentMethod = 4
	PaymentPartialPaymentCredit  PaymentMethod = 5
	PaymentCreditTransfer        PaymentMethod = 6
	PaymentCreditPayment         PaymentMethod = 7
)

func (p PaymentMethod) String() string {
	switch p {
	case PaymentFullPrepayment:
		return "FullPrepayment"
	case PaymentPartialPrepayment:
		return "PartialPrepayment"
	case PaymentAdvance:
		return "Advance"
	case PaymentFullPayment:
		return "FullPayment"
	case PaymentPartialPaymentCredit:
		return "PartialPaymentCredit"
	case PaymentCreditTransfer:
		return "CreditTransfer"
	case PaymentCreditPayment:
		return "CreditPayment"
	default:
		return "Unknown"
	}
}

// AgentType is the settlement-agent flag bitset (признак агента), tag 1057.
type AgentType uint8

const (
	AgentBankPayingAgent    AgentType = 1 << 0
	AgentBankPayingSubagent AgentType = 1 << 1
	AgentPayingAgent        AgentType = 1 << 2
	AgentPayingSubagent     AgentType = 1 << 3
	AgentAttorney           AgentType = 1 << 4
	AgentCommissioner       AgentType = 1 << 5
	AgentAnother            AgentType = 1 << 6
)

// VatType is the VAT rate (ставка НДС), tag 1199.
type VatType uint8

const (
	Vat20        VatType = 1
	Vat10        VatType = 2
	Vat0         VatType = 3
	VatNone      VatType = 4
	Vat20Over120 VatType = 5
	Vat10Over110 VatType = 6
	Vat5         VatType = 7
	Vat7         VatType = 8
	Vat5Over105  VatType = 9
	Vat7Over107  VatType = 10
)

func (v VatType) String() string {
	switch v {
	case Vat20:
		return "Vat20"
	case Vat10:
		return "Vat10"
	case Vat0:
		return "Vat0"
	case VatNone:
		return "VatNone"
	case Vat20Over120:
		return "Vat20Over120"
	case Vat10Over110:
		return "Vat10Over110"
	case Vat5:
		return "Vat5"
	case Vat7:
		return "Vat7"
	case Vat5Over105:
		return "Vat5Over105"
	case Vat7Over107:
		return "Vat7Over107"
	default:
		return "Unknown"
	}
}

// FfdVersion is the fiscal data format version (версия ФФД), tag 1209.
type FfdVersion uint8

const (
	Ffd1_0  FfdVersion = 1
	Ffd1_05 FfdVersion = 2
	Ffd1_1  FfdVersion = 3
	Ffd1_2  FfdVersion = 4
)

func (f FfdVersion) String() string {
	switch f {
	case Ffd1_0:
		return "1.0"
	case Ffd1_05:
		return "1.05"
	case Ffd1_1:
		return "1.1"
	case Ffd1_2:
		return "1.2"
	default:
		return "Unknown"
	}
}

// ItemType is the settlement-subject flag (признак предмета расчета), tag 1212.
type ItemType uint8

const (
	ItemCommodity               ItemType = 1
	ItemExcise                  ItemType = 2
	ItemJob                     ItemType = 3
	ItemService                 ItemType = 4
	ItemGamblingBet             ItemType = 5
	ItemGamblingWin             ItemType = 6
	ItemLotteryTicket           ItemType = 7
	ItemLotteryWin              ItemType = 8
	ItemIntellectualActivity    ItemType = 9
	ItemPayment                 ItemType = 10
	ItemAgentCommission         ItemType = 11
	ItemCompositeSubject        ItemType = 12
	ItemOther                   ItemType = 13
)

// OperationType is the settlement-direction flag (признак расчета), used on
// correction receipts and payment-state reports.
type OperationType uint8

const (
	OperationIncome       OperationType = 1
	OperationIncomeReturn OperationType = 2
	OperationExpense      OperationType = 3
	OperationExpenseReturn OperationType = 4
)

// KktInfoUpdateReason is the reregistration-reason bitset (причина
// перерегистрации), tag 1205. The JSON bridge emits the tag once, as an
// array of 1-based set-bit positions under its registry name
// "correctionKktReasonCode"; no plain-enum JSON form of it is produced.
type KktInfoUpdateReason uint8

const (
	KktInfoUpdateOther           KktInfoUpdateReason = 1 << 0
	KktInfoUpdateFnReplacement   KktInfoUpdateReason = 1 << 1
	KktInfoUpdateOfdChange       KktInfoUpdateReason = 1 << 2
	KktInfoUpdateKktParamsChange KktInfoUpdateReason = 1 << 3
)

// BitPositions returns the 1-based positions of the set bits, in ascending
// order, for the JSON array serialization of bitset-valued enums.
func BitPositions(mask uint64) []int {
	var out []int
	for i := 0; i < 64; i++ {
		if mask&(1<<uint(i)) != 0 {
			out = append(out, i+1)
		}
	}

	return out
}

// MaskFromBitPositions rebuilds a bitmask from 1-based bit positions, the
// inverse of BitPositions, used when deserializing the array-of-positions
// JSON shape back into the logical enum value.
func MaskFromBitPositions(positions []int) uint64 {
	var mask uint64
	for _, p := range positions {
		if p >= 1 && p <= 64 {
			mask |= 1 << uint(p-1)
		}
	}

	return mask
}

// MarkingCheckResult is the marked-product check-result flag set (результат
// проверки КМ), used by the Честный Знак marking-notification document
// variants (tags 82/83).
type MarkingCheckResult uint8

const (
	MarkingCheckOK                  MarkingCheckResult = 1 << 0
	MarkingCheckDuplicateCode       MarkingCheckResult = 1 << 1
	MarkingCheckExpired             MarkingCheckResult = 1 << 2
	MarkingCheckWithdrawnFromCirc   MarkingCheckResult = 1 << 3
)
