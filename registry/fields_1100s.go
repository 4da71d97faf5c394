package registry

import (
	"time"

	"github.com/rufiscal/fdcodec/fdformat"
	"github.com/rufiscal/fdcodec/fdpad"
	"github.com/rufiscal/fdcodec/field"
)

// Field descriptors for the 1100s tag range, generated from the field
// catalogue; see DESIGN.md for the extraction and any Open Question fixups.
var (
	// (1101) Код причины перерегистрации  Причина изменения сведений о ККТ
	ReregistrationReason = field.Field[uint64]{Tag: 1101}
	// (1102) Сумма НДС чека по ставке 20%  Сумма налога на добавленную стоимость, входящая в итоговую стоимость предмета расчета, по ставке налога на добавленную стоимость 20%
	TotalVat20Sum = field.Field[uint64]{Tag: 1102}
	// (1103) Сумма НДС чека по ставке 10%  Сумма налога на добавленную стоимость, входящая в итоговую стоимость предмета расчета, по ставке налога на добавленную стоимость 10%
	TotalVat10Sum = field.Field[uint64]{Tag: 1103}
	// (1104) Сумма расчета по чеку с НДС по ставке 0%  Сумма расчетов за предметы расчета, указанные в кассовом чеке (БСО), кассовом чеке коррекции (БСО коррекции), со ставкой налога на добавленную стоимость 0%
	TotalSumWithVat0 = field.Field[uint64]{Tag: 1104}
	// (1105) Сумма расчета по чеку без НДС  Сумма расчетов за предметы расчета, указанные в кассовом чеке (БСО), кассовом чеке коррекции (БСО коррекции), осуществленных пользователем, не являющимся налогоплательщиком налога на добавленную стоимость или освобожденным от исполнения обязанностей налогоплательщика налога на добавленную стоимость, а также сумма расчетов за предметы расчета, не подлежащие налогообложению (освобождаемые от налогообложения) налогом на добавленную стоимость
	TotalSumWithNoVat = field.Field[uint64]{Tag: 1105}
	// (1106) Сумма НДС чека по расч. ставке 20/120  Сумма налога на добавленную стоимость, входящая в итоговую стоимость предметов расчета, указанных в кассовом чеке (БСО), кассовом чеке коррекции (БСО коррекции), по расчетной ставке налога на добавленную стоимость 20/120
	TotalVat20_120Sum = field.Field[uint64]{Tag: 1106}
	// (1107) Сумма НДС чека по расч. ставке 10/110  Сумма налога на добавленную стоимость, входящая в итоговую стоимость предметов расчета, указанных в кассовом чеке (БСО), кассовом чеке коррекции (БСО коррекции), по расчетной ставке налога на добавленную стоимость 10/110
	TotalVat10_110Sum = field.Field[uint64]{Tag: 1107}
	// (1108) Признак ККТ для расчетов только в Интернет  Признак ККТ, предназначенной для осуществления расчетов только в сети «Интернет», в которой отсутствует устройство для печати фискальных документов в составе ККТ
	OnlineKktFlag = field.Field[bool]{Tag: 1108}
	// (1109) Признак расчетов за услуги  Признак применения ККТ только при оказании услуг
	ServiceFlag = field.Field[bool]{Tag: 1109}
	// (1110) Признак АС БСО  Признак ККТ, являющейся автоматизированной системой для БСО (может формировать только БСО и применяться для осуществления расчетов только при оказании услуг)
	BsoFlag = field.Field[bool]{Tag: 1110}
	// (1111) Общее количество ФД за смену  Общее количество ФД, сформированных ККТ за смену
	DocCountPerShift = field.Field[uint64]{Tag: 1111}
	// (1112) Скидка/наценка (содержит объекты с тегами 1113/1114/1063/1034/1064/1035)
	// Deprecated: retained for wire round-trip fidelity only.
	Modifiers = field.Field[[]byte]{Tag: 1112}
	// (1113) Наименование скидки
	// Deprecated: retained for wire round-trip fidelity only.
	DiscountName = field.Field[string]{Tag: 1113}
	// (1114) Наименование наценки
	// Deprecated: retained for wire round-trip fidelity only.
	MarkupName = field.Field[string]{Tag: 1114}
	// (1115) Адрес сайта для проверки ФП
	// Deprecated: retained for wire round-trip fidelity only.
	FiscalSignCheckUrl = field.Field[string]{Tag: 1115}
	// (1116) Номер первого непереданного документа  Номер первого ФД из числа не переданных ОФД
	UntransmittedDocNum = field.Field[uint64]{Tag: 1116}
	// (1117) Адрес электронной почты отправителя чека  Адрес электронной почты отправителя кассового чека (БСО), кассового чека коррекции (БСО коррекции) в электронной форме, в том числе пользователя или ОФД, если отправителем является пользователь или ОФД, соответственно, в случае передачи покупателю (клиенту) кассового чека или бланка строгой отчетности в электронной форме
	ReceiptSenderEmail = field.Field[string]{Tag: 1117}
	// (1118) Количество кассовых чеков (БСО) за смену  Количество кассовых чеков (БСО) со всеми признаками расчетов и кассовых чеков коррекции (БСО коррекции) со всеми признаками расчетов, сформированных ККТ за текущую смену
	ReceiptCountPerShift = field.Field[uint64]{Tag: 1118}
	// (1119) Телефон платежного субагента
	// Deprecated: retained for wire round-trip fidelity only.
	OldPaymentOperatorPhone = field.Field[string]{Tag: 1119}
	// (1120) Код справочника
	// Deprecated: retained for wire round-trip fidelity only.
	ReferenceCode = field.Field[uint64]{Tag: 1120}
	// (1121) Код классификации товара
	// Deprecated: retained for wire round-trip fidelity only.
	ProductClassificationCode = field.Field[uint64]{Tag: 1121}
	// (1122) Сведения о классификации товара
	// Deprecated: retained for wire round-trip fidelity only.
	ProductClassificationInfo = field.Field[string]{Tag: 1122}
	// (1123) Код классификации товара
	// Deprecated: retained for wire round-trip fidelity only.
	ProductIdentificationCode = field.Field[uint64]{Tag: 1123}
	// (1124) Сведения о классификации товара
	// Deprecated: retained for wire round-trip fidelity only.
	ProductIdentificationInfo = field.Field[string]{Tag: 1124}
	// (1125) Наименование ОФД
	// Deprecated: retained for wire round-trip fidelity only.
	OldOfdName = field.Field[string]{Tag: 1125}
	// (1126) Признак проведения лотереи  Признак применения ККТ при проведении расчетов при реализации лотерейных билетов, электронных лотерейных билетов, приеме лотерейных ставок и выплате денежных средств в виде выигрыша при осуществлении деятельности по проведению лотерей
	LotteryFlag = field.Field[bool]{Tag: 1126}
	// (1127) Кол-во непереданных документов по наличным расчетам
	// Deprecated: retained for wire round-trip fidelity only.
	UntransmittedEcashReceiptCount = field.Field[uint64]{Tag: 1127}
	// (1129) Счетчики операций «приход»  Итоговые количества и итоговые суммы расчетов кассовых чеков (БСО) и кассовых чеков коррекции (БСО коррекции) с признаком расчета «приход»
	SaleStats = field.Field[[]byte]{Tag: 1129}
	// (1130) Счетчики операций «возврат прихода»  Итоговые количества и итоговые суммы расчетов кассовых чеков (БСО) и кассовых чеков коррекции (БСО коррекции) с признаком расчета «возврат прихода»
	SaleReturnStats = field.Field[[]byte]{Tag: 1130}
	// (1131) Счетчики операций «расход»  Итоговые количества и итоговые суммы расчетов кассовых чеков (БСО) и кассовых чеков коррекции (БСО коррекции) с признаком расчета «расход»
	PurchaseStats = field.Field[[]byte]{Tag: 1131}
	// (1132) Счетчики операций «возврат расхода»  Итоговые количества и итоговые суммы расчетов кассовых чеков (БСО) и кассовых чеков коррекции (БСО коррекции) с признаком расчета «возврат расхода»
	PurchaseReturnStats = field.Field[[]byte]{Tag: 1132}
	// (1133) Счетчики операций по чекам коррекции (БСО коррекции)  Итоговые количества и итоговые суммы расчетов кассовых чеков коррекции (БСО коррекции)
	CorrectionStats = field.Field[[]byte]{Tag: 1133}
	// (1134) Количество чеков (БСО) и чеков коррекции (БСО коррекции) со всеми признаками расчетов  Количество кассовых чеков (БСО) и кассовых чеков коррекции (БСО коррекции) со всеми признаками расчетов («приход», «расход», «возврат прихода», «возврат расхода»)
	TotalReceiptAndCorrectionCount = field.Field[uint64]{Tag: 1134}
	// (1135) Количество чеков (БСО) по признаку расчетов  Количество кассовых чеков (БСО) и (или) кассовых чеков коррекции (БСО коррекции) или непереданных кассовых чеков (БСО) и кассовых чеков коррекции (БСО коррекции) по одному из признаков расчетов («приход», «расход», «возврат прихода», «возврат расхода»)
	AggregatedReceiptCount = field.Field[uint64]{Tag: 1135}
	// (1136) Итоговая сумма в чеках (БСО) наличными денежными средствами  Итоговая сумма расчетов, указанных в кассовых чеках (БСО) и кассовых чеках коррекции (БСО коррекции), совершенных с использованием наличных денежных средств
	AggregatedCashSum = field.Field[uint64]{Tag: 1136}
	// (1138) Итоговая сумма в чеках (БСО) безналичными  Итоговая сумма расчетов, указанных в кассовых чеках (БСО) и кассовых чеках коррекции (БСО коррекции), совершенных в безналичном порядке
	AggregatedEcashSum = field.Field[uint64]{Tag: 1138}
	// (1139) Сумма НДС по ставке 20%  Итоговая сумма налога на добавленную стоимость по ставке 20%, указанная в кассовых чеках (БСО) и кассовых чеках коррекции (БСО коррекции) с одним из признаков расчета: «приход», «расход», «возврат прихода», «возврат расхода»
	AggregatedVat20Sum = field.Field[uint64]{Tag: 1139}
	// (1140) Сумма НДС по ставке 10%  Итоговая сумма налога на добавленную стоимость по ставке 10%, указанная в кассовых чеках (БСО) и кассовых чеках коррекции (БСО коррекции) с одним из признаков расчета: «приход», «расход», «возврат прихода», «возврат расхода»
	AggregatedVat10Sum = field.Field[uint64]{Tag: 1140}
	// (1141) Сумма НДС по расч. ставке 20/120  Итоговая сумма налога на добавленную стоимость по расчетной ставке 20/120, указанная в кассовых чеках (БСО) и кассовых чеках коррекции (БСО коррекции) с одним из признаков расчета: «приход», «расход», «возврат прихода», «возврат расхода»
	AggregatedVat20_120Sum = field.Field[uint64]{Tag: 1141}
	// (1142) Сумма НДС по расч. ставке 10/110  Итоговая сумма налога на добавленную стоимость по расчетной ставке 10/110, указанная в кассовых чеках (БСО) и кассовых чеках коррекции (БСО коррекции) с одним из признаков расчета: «приход», «расход», «возврат прихода», «возврат расхода»
	AggregatedVat10_110Sum = field.Field[uint64]{Tag: 1142}
	// (1143) Сумма расчетов с НДС по ставке 0%  Итоговая сумма расчетов, указанных в кассовых чеках (БСО) и кассовых чеках коррекции (БСО коррекции) со ставкой налога на добавленную стоимость 0%
	AggregatedSumWithVat0 = field.Field[uint64]{Tag: 1143}
	// (1144) Количество чеков коррекции (БСО коррекции) или непереданных чеков (БСО) и чеков коррекции (БСО коррекции)  Количество кассовых чеков коррекции (БСО коррекции), сформированных ККТ, либо количество непереданных кассовых чеков (БСО) и кассовых чеков коррекции (БСО коррекции) ККТ со всеми признаками расчетов
	CorrectionAndUntransmittedCount = field.Field[uint64]{Tag: 1144}
	// (1145) Счетчики по признаку «приход»  Итоговые количества и итоговые суммы кассовых чеков коррекции (БСО коррекции), а также итоговые количества и итоговые суммы непереданных кассовых чеков (БСО) и кассовых чеков коррекции (БСО коррекции) с признаком расчета «приход»
	UntransmittedSaleStats = field.Field[[]byte]{Tag: 1145}
	// (1146) Счетчики по признаку «расход»  Итоговые количества и итоговые суммы кассовых чеков коррекции (БСО коррекции), а также итоговые количества и итоговые суммы непереданных кассовых чеков (БСО) и кассовых чеков коррекции (БСО коррекции) с признаком расчета «расход»
	UntransmittedPurchaseStats = field.Field[[]byte]{Tag: 1146}
	// (1157) Счетчики итогов ФН  Итоговые суммы расчетов, указанных в кассовых чеках (БСО) или в кассовых чеках коррекции (БСО коррекции), зафиксированные в счетчиках итогов ФН
	DriveStats = field.Field[[]byte]{Tag: 1157}
	// (1158) Счетчики итогов непереданных ФД  Итоговые количества и итоговые суммы расчетов непереданных кассовых чеков (БСО) и кассовых чеков коррекции (БСО коррекции)
	DriveUntransmittedStats = field.Field[[]byte]{Tag: 1158}
	// (1162) Код товара  Код товара, описание указано в таблице 26
	ProductCode = field.Field[[]byte]{Tag: 1162}
	// (1163) Код товара  Код товара, описание указано в таблице 118
	ProductCodeNew = field.Field[[]byte]{Tag: 1163}
	// (1171) Телефон поставщика  Номера контактных телефонов поставщика
	SupplierPhone = field.Field[string]{Tag: 1171}
	// (1173) Тип коррекции  Тип коррекции
	CorrectionType = field.Field[uint64]{Tag: 1173}
	// (1174) Основание для коррекции  Основание для коррекции
	CorrectionBasis = field.Field[[]byte]{Tag: 1174}
	// (1178) Дата совершения корректируемого расчета  Дата совершения расчета, в отношении к которому формируется кассовый чек коррекции (БСО коррекции)
	CorrectedPaymentDate = field.Field[time.Time]{Tag: 1178}
	// (1179) Номер предписания налогового органа  Номер предписания налогового органа об устранении выявленного нарушения законодательства Российской Федерации о применении ККТ
	FnsActNumber = field.Field[string]{Tag: 1179}
	// (1183) Сумма расчетов без НДС  Итоговая сумма расчетов, указанных в кассовых чеках (БСО) и кассовых чеках коррекции (БСО коррекции) с одним из признаков расчета: «приход», «возврат прихода», «расход», «возврат расхода»
	AggregatedSumWithNoVat = field.Field[uint64]{Tag: 1183}
	// (1187) Место расчетов  Место осуществления расчетов между пользователем и покупателем (клиентом), позволяющее покупателю (клиенту) идентифицировать место расчета. В случае применения ККТ с автоматическим устройством для расчетов место нахождения этого автоматического устройства для расчетов
	RetailPlace = field.Field[string]{Tag: 1187}
	// (1188) Версия ККТ  Версия модели контрольно-кассовой техники
	KktVer = field.Field[string]{Tag: 1188}
	// (1189) Версия ФФД ККТ  Версия форматов фискальных документов с максимальным номером, реализованная в ККТ, в соответствии с реестром ККТ
	KktFfdVer = field.Field[uint64]{Tag: 1189}
	// (1190) Версия ФФД ФН  Версия форматов фискальных документов с максимальным номером, реализованная в ФН, в соответствии с реестром ФН
	DriveFfdVer = field.Field[uint64]{Tag: 1190}
	// (1191) Дополнительный реквизит предмета расчета  Наименование дополнительного реквизита с учетом особенностей сферы деятельности, в которой осуществляются расчеты
	AdditionalItemProp = field.Field[string]{Tag: 1191}
	// (1192) Дополнительный реквизит чека (БСО)  Значение дополнительного реквизита с учетом особенностей сферы деятельности, в которой осуществляются расчеты
	AdditionalReceiptProp = field.Field[string]{Tag: 1192}
	// (1193) Признак проведения азартных игр  Признак применения ККТ при проведении расчетов при приеме ставок и выплате денежных средств в виде выигрыша при осуществлении деятельности по проведению азартных игр
	GamblingFlag = field.Field[bool]{Tag: 1193}
	// (1194) Счетчики итогов смены  Итоговые суммы расчетов, указанных в кассовых чеках (БСО) и кассовых чеках коррекции (БСО коррекции)
	ShiftStats = field.Field[[]byte]{Tag: 1194}
	// (1196) QR-код  Двумерный штриховой код, размером не менее 20 x 20 мм
	QrCode = field.Field[string]{Tag: 1196}
	// (1197) Единица измерения предмета расчета  Единица измерения товара, работы, услуги, платежа, выплаты, иного предмета расчета
	Unit = field.Field[string]{Tag: 1197}
	// (1198) Размер НДС за единицу предмета расчета  Размер налога на добавленную стоимость для единицы товара, работы, услуги, платежа, выплаты, иного предмета расчета
	ItemUnitVat = field.Field[uint64]{Tag: 1198}
	// (1199) Ставка НДС  Ставка налога на добавленную стоимость товара, работы, услуги, платежа, выплаты, иного предмета расчета
	VatRate = field.Field[uint64]{Tag: 1199}
)

func init() {
	register([]Entry{
		{Tag: 1101, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "", Aliases: nil, Multi: true, Deprecated: false, Doc: "(1101) Код причины перерегистрации  Причина изменения сведений о ККТ"},
		{Tag: 1102, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "nds18", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1102) Сумма НДС чека по ставке 20%  Сумма налога на добавленную стоимость, входящая в итоговую стоимость предмета расчета, по ставке налога на добавленную стоимость 20%"},
		{Tag: 1103, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "nds10", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1103) Сумма НДС чека по ставке 10%  Сумма налога на добавленную стоимость, входящая в итоговую стоимость предмета расчета, по ставке налога на добавленную стоимость 10%"},
		{Tag: 1104, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "nds0", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1104) Сумма расчета по чеку с НДС по ставке 0%  Сумма расчетов за предметы расчета, указанные в кассовом чеке (БСО), кассовом чеке коррекции (БСО коррекции), со ставкой налога на добавленную стоимость 0%"},
		{Tag: 1105, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "ndsNo", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1105) Сумма расчета по чеку без НДС  Сумма расчетов за предметы расчета, указанные в кассовом чеке (БСО), кассовом чеке коррекции (БСО коррекции), осуществленных пользователем, не являющимся налогоплательщиком налога на добавленную стоимость или освобожденным от исполнения обязанностей налогоплательщика налога на добавленную стоимость, а также сумма расчетов за предметы расчета, не подлежащие налогообложению (освобождаемые от налогообложения) налогом на добавленную стоимость"},
		{Tag: 1106, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "nds18118", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1106) Сумма НДС чека по расч. ставке 20/120  Сумма налога на добавленную стоимость, входящая в итоговую стоимость предметов расчета, указанных в кассовом чеке (БСО), кассовом чеке коррекции (БСО коррекции), по расчетной ставке налога на добавленную стоимость 20/120"},
		{Tag: 1107, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "nds10110", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1107) Сумма НДС чека по расч. ставке 10/110  Сумма налога на добавленную стоимость, входящая в итоговую стоимость предметов расчета, указанных в кассовом чеке (БСО), кассовом чеке коррекции (БСО коррекции), по расчетной ставке налога на добавленную стоимость 10/110"},
		{Tag: 1108, Kind: fdformat.KindBool, Pad: fdpad.Right(1, 0x00), JSONName: "internetSign", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1108) Признак ККТ для расчетов только в Интернет  Признак ККТ, предназначенной для осуществления расчетов только в сети «Интернет», в которой отсутствует устройство для печати фискальных документов в составе ККТ"},
		{Tag: 1109, Kind: fdformat.KindBool, Pad: fdpad.Right(1, 0x00), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1109) Признак расчетов за услуги  Признак применения ККТ только при оказании услуг"},
		{Tag: 1110, Kind: fdformat.KindBool, Pad: fdpad.Right(1, 0x00), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1110) Признак АС БСО  Признак ККТ, являющейся автоматизированной системой для БСО (может формировать только БСО и применяться для осуществления расчетов только при оказании услуг)"},
		{Tag: 1111, Kind: fdformat.KindU32, Pad: fdpad.Right(4, 0x00), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1111) Общее количество ФД за смену  Общее количество ФД, сформированных ККТ за смену"},
		{Tag: 1112, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(160)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1112) Скидка/наценка (содержит объекты с тегами 1113/1114/1063/1034/1064/1035)"},
		{Tag: 1113, Kind: fdformat.KindString, Pad: fdpad.None(u32p(64)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1113) Наименование скидки"},
		{Tag: 1114, Kind: fdformat.KindString, Pad: fdpad.None(u32p(64)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1114) Наименование наценки"},
		{Tag: 1115, Kind: fdformat.KindString, Pad: fdpad.None(nil), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1115) Адрес сайта для проверки ФП"},
		{Tag: 1116, Kind: fdformat.KindU32, Pad: fdpad.Right(4, 0x00), JSONName: "notTransmittedDocumentNumber", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1116) Номер первого непереданного документа  Номер первого ФД из числа не переданных ОФД"},
		{Tag: 1117, Kind: fdformat.KindString, Pad: fdpad.None(u32p(64)), JSONName: "sellerAddress", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1117) Адрес электронной почты отправителя чека  Адрес электронной почты отправителя кассового чека (БСО), кассового чека коррекции (БСО коррекции) в электронной форме, в том числе пользователя или ОФД, если отправителем является пользователь или ОФД, соответственно, в случае передачи покупателю (клиенту) кассового чека или бланка строгой отчетности в электронной форме"},
		{Tag: 1118, Kind: fdformat.KindU32, Pad: fdpad.Right(4, 0x00), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1118) Количество кассовых чеков (БСО) за смену  Количество кассовых чеков (БСО) со всеми признаками расчетов и кассовых чеков коррекции (БСО коррекции) со всеми признаками расчетов, сформированных ККТ за текущую смену"},
		{Tag: 1119, Kind: fdformat.KindString, Pad: fdpad.None(u32p(19)), JSONName: "", Aliases: nil, Multi: true, Deprecated: true, Doc: "(1119) Телефон платежного субагента"},
		{Tag: 1120, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(16)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1120) Код справочника"},
		{Tag: 1121, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(16)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1121) Код классификации товара"},
		{Tag: 1122, Kind: fdformat.KindString, Pad: fdpad.None(u32p(16)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1122) Сведения о классификации товара"},
		{Tag: 1123, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(24)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1123) Код классификации товара"},
		{Tag: 1124, Kind: fdformat.KindString, Pad: fdpad.None(u32p(16)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1124) Сведения о классификации товара"},
		{Tag: 1125, Kind: fdformat.KindString, Pad: fdpad.None(u32p(256)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1125) Наименование ОФД"},
		{Tag: 1126, Kind: fdformat.KindBool, Pad: fdpad.Right(1, 0x00), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1126) Признак проведения лотереи  Признак применения ККТ при проведении расчетов при реализации лотерейных билетов, электронных лотерейных билетов, приеме лотерейных ставок и выплате денежных средств в виде выигрыша при осуществлении деятельности по проведению лотерей"},
		{Tag: 1127, Kind: fdformat.KindU32, Pad: fdpad.Right(4, 0x00), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1127) Кол-во непереданных документов по наличным расчетам"},
		{Tag: 1129, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(116)), JSONName: "sellOper", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1129) Счетчики операций «приход»  Итоговые количества и итоговые суммы расчетов кассовых чеков (БСО) и кассовых чеков коррекции (БСО коррекции) с признаком расчета «приход»"},
		{Tag: 1130, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(116)), JSONName: "sellReturnOper", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1130) Счетчики операций «возврат прихода»  Итоговые количества и итоговые суммы расчетов кассовых чеков (БСО) и кассовых чеков коррекции (БСО коррекции) с признаком расчета «возврат прихода»"},
		{Tag: 1131, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(116)), JSONName: "buyOper", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1131) Счетчики операций «расход»  Итоговые количества и итоговые суммы расчетов кассовых чеков (БСО) и кассовых чеков коррекции (БСО коррекции) с признаком расчета «расход»"},
		{Tag: 1132, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(116)), JSONName: "buyReturnOper", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1132) Счетчики операций «возврат расхода»  Итоговые количества и итоговые суммы расчетов кассовых чеков (БСО) и кассовых чеков коррекции (БСО коррекции) с признаком расчета «возврат расхода»"},
		{Tag: 1133, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(216)), JSONName: "receiptCorrection", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1133) Счетчики операций по чекам коррекции (БСО коррекции)  Итоговые количества и итоговые суммы расчетов кассовых чеков коррекции (БСО коррекции)"},
		{Tag: 1134, Kind: fdformat.KindU32, Pad: fdpad.Right(4, 0x00), JSONName: "totalReceiptBsoCount", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1134) Количество чеков (БСО) и чеков коррекции (БСО коррекции) со всеми признаками расчетов  Количество кассовых чеков (БСО) и кассовых чеков коррекции (БСО коррекции) со всеми признаками расчетов («приход», «расход», «возврат прихода», «возврат расхода»)"},
		{Tag: 1135, Kind: fdformat.KindU32, Pad: fdpad.Right(4, 0x00), JSONName: "receiptBsoCount", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1135) Количество чеков (БСО) по признаку расчетов  Количество кассовых чеков (БСО) и (или) кассовых чеков коррекции (БСО коррекции) или непереданных кассовых чеков (БСО) и кассовых чеков коррекции (БСО коррекции) по одному из признаков расчетов («приход», «расход», «возврат прихода», «возврат расхода»)"},
		{Tag: 1136, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "cashSum", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1136) Итоговая сумма в чеках (БСО) наличными денежными средствами  Итоговая сумма расчетов, указанных в кассовых чеках (БСО) и кассовых чеках коррекции (БСО коррекции), совершенных с использованием наличных денежных средств"},
		{Tag: 1138, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "ecashSum", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1138) Итоговая сумма в чеках (БСО) безналичными  Итоговая сумма расчетов, указанных в кассовых чеках (БСО) и кассовых чеках коррекции (БСО коррекции), совершенных в безналичном порядке"},
		{Tag: 1139, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "tax18Sum", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1139) Сумма НДС по ставке 20%  Итоговая сумма налога на добавленную стоимость по ставке 20%, указанная в кассовых чеках (БСО) и кассовых чеках коррекции (БСО коррекции) с одним из признаков расчета: «приход», «расход», «возврат прихода», «возврат расхода»"},
		{Tag: 1140, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "tax10Sum", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1140) Сумма НДС по ставке 10%  Итоговая сумма налога на добавленную стоимость по ставке 10%, указанная в кассовых чеках (БСО) и кассовых чеках коррекции (БСО коррекции) с одним из признаков расчета: «приход», «расход», «возврат прихода», «возврат расхода»"},
		{Tag: 1141, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "tax18118Sum", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1141) Сумма НДС по расч. ставке 20/120  Итоговая сумма налога на добавленную стоимость по расчетной ставке 20/120, указанная в кассовых чеках (БСО) и кассовых чеках коррекции (БСО коррекции) с одним из признаков расчета: «приход», «расход», «возврат прихода», «возврат расхода»"},
		{Tag: 1142, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "tax10110Sum", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1142) Сумма НДС по расч. ставке 10/110  Итоговая сумма налога на добавленную стоимость по расчетной ставке 10/110, указанная в кассовых чеках (БСО) и кассовых чеках коррекции (БСО коррекции) с одним из признаков расчета: «приход», «расход», «возврат прихода», «возврат расхода»"},
		{Tag: 1143, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "tax0Sum", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1143) Сумма расчетов с НДС по ставке 0%  Итоговая сумма расчетов, указанных в кассовых чеках (БСО) и кассовых чеках коррекции (БСО коррекции) со ставкой налога на добавленную стоимость 0%"},
		{Tag: 1144, Kind: fdformat.KindU32, Pad: fdpad.Right(4, 0x00), JSONName: "receiptCorrectionCount", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1144) Количество чеков коррекции (БСО коррекции) или непереданных чеков (БСО) и чеков коррекции (БСО коррекции)  Количество кассовых чеков коррекции (БСО коррекции), сформированных ККТ, либо количество непереданных кассовых чеков (БСО) и кассовых чеков коррекции (БСО коррекции) ККТ со всеми признаками расчетов"},
		{Tag: 1145, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(32)), JSONName: "sellCorrection", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1145) Счетчики по признаку «приход»  Итоговые количества и итоговые суммы кассовых чеков коррекции (БСО коррекции), а также итоговые количества и итоговые суммы непереданных кассовых чеков (БСО) и кассовых чеков коррекции (БСО коррекции) с признаком расчета «приход»"},
		{Tag: 1146, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(32)), JSONName: "buyCorrection", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1146) Счетчики по признаку «расход»  Итоговые количества и итоговые суммы кассовых чеков коррекции (БСО коррекции), а также итоговые количества и итоговые суммы непереданных кассовых чеков (БСО) и кассовых чеков коррекции (БСО коррекции) с признаком расчета «расход»"},
		{Tag: 1157, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(708)), JSONName: "fiscalDriveSumReports", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1157) Счетчики итогов ФН  Итоговые суммы расчетов, указанных в кассовых чеках (БСО) или в кассовых чеках коррекции (БСО коррекции), зафиксированные в счетчиках итогов ФН"},
		{Tag: 1158, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(708)), JSONName: "notTransmittedDocumentsSumReports", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1158) Счетчики итогов непереданных ФД  Итоговые количества и итоговые суммы расчетов непереданных кассовых чеков (БСО) и кассовых чеков коррекции (БСО коррекции)"},
		{Tag: 1162, Kind: fdformat.KindBytes, Pad: fdpad.None(u32p(32)), JSONName: "productCode", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1162) Код товара  Код товара, описание указано в таблице 26"},
		{Tag: 1163, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(256)), JSONName: "productCodeNew", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1163) Код товара  Код товара, описание указано в таблице 118"},
		{Tag: 1171, Kind: fdformat.KindString, Pad: fdpad.None(u32p(19)), JSONName: "providerPhone", Aliases: nil, Multi: true, Deprecated: false, Doc: "(1171) Телефон поставщика  Номера контактных телефонов поставщика"},
		{Tag: 1173, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "correctionType", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1173) Тип коррекции  Тип коррекции"},
		{Tag: 1174, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(292)), JSONName: "сorrectionBase", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1174) Основание для коррекции  Основание для коррекции"},
		{Tag: 1178, Kind: fdformat.KindDate, Pad: fdpad.Right(4, 0x00), JSONName: "correctionDocumentDate", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1178) Дата совершения корректируемого расчета  Дата совершения расчета, в отношении к которому формируется кассовый чек коррекции (БСО коррекции)"},
		{Tag: 1179, Kind: fdformat.KindString, Pad: fdpad.None(u32p(32)), JSONName: "correctionDocumentNumber", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1179) Номер предписания налогового органа  Номер предписания налогового органа об устранении выявленного нарушения законодательства Российской Федерации о применении ККТ"},
		{Tag: 1183, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "taxFreeSum", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1183) Сумма расчетов без НДС  Итоговая сумма расчетов, указанных в кассовых чеках (БСО) и кассовых чеках коррекции (БСО коррекции) с одним из признаков расчета: «приход», «возврат прихода», «расход», «возврат расхода»"},
		{Tag: 1187, Kind: fdformat.KindString, Pad: fdpad.None(u32p(256)), JSONName: "retailPlace", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1187) Место расчетов  Место осуществления расчетов между пользователем и покупателем (клиентом), позволяющее покупателю (клиенту) идентифицировать место расчета. В случае применения ККТ с автоматическим устройством для расчетов место нахождения этого автоматического устройства для расчетов"},
		{Tag: 1188, Kind: fdformat.KindString, Pad: fdpad.None(u32p(8)), JSONName: "kktVersion", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1188) Версия ККТ  Версия модели контрольно-кассовой техники"},
		{Tag: 1189, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "documentKktVersion", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1189) Версия ФФД ККТ  Версия форматов фискальных документов с максимальным номером, реализованная в ККТ, в соответствии с реестром ККТ"},
		{Tag: 1190, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "documentFdVersion", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1190) Версия ФФД ФН  Версия форматов фискальных документов с максимальным номером, реализованная в ФН, в соответствии с реестром ФН"},
		{Tag: 1191, Kind: fdformat.KindString, Pad: fdpad.None(u32p(64)), JSONName: "propertiesItem", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1191) Дополнительный реквизит предмета расчета  Наименование дополнительного реквизита с учетом особенностей сферы деятельности, в которой осуществляются расчеты"},
		{Tag: 1192, Kind: fdformat.KindString, Pad: fdpad.None(u32p(16)), JSONName: "propertiesData", Aliases: nil, Multi: true, Deprecated: false, Doc: "(1192) Дополнительный реквизит чека (БСО)  Значение дополнительного реквизита с учетом особенностей сферы деятельности, в которой осуществляются расчеты"},
		{Tag: 1193, Kind: fdformat.KindBool, Pad: fdpad.Right(1, 0x00), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1193) Признак проведения азартных игр  Признак применения ККТ при проведении расчетов при приеме ставок и выплате денежных средств в виде выигрыша при осуществлении деятельности по проведению азартных игр"},
		{Tag: 1194, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(708)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1194) Счетчики итогов смены  Итоговые суммы расчетов, указанных в кассовых чеках (БСО) и кассовых чеках коррекции (БСО коррекции)"},
		{Tag: 1196, Kind: fdformat.KindString, Pad: fdpad.None(nil), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1196) QR-код  Двумерный штриховой код, размером не менее 20 x 20 мм"},
		{Tag: 1197, Kind: fdformat.KindString, Pad: fdpad.None(u32p(16)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1197) Единица измерения предмета расчета  Единица измерения товара, работы, услуги, платежа, выплаты, иного предмета расчета"},
		{Tag: 1198, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "unitNds", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1198) Размер НДС за единицу предмета расчета  Размер налога на добавленную стоимость для единицы товара, работы, услуги, платежа, выплаты, иного предмета расчета"},
		{Tag: 1199, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "nds", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1199) Ставка НДС  Ставка налога на добавленную стоимость товара, работы, услуги, платежа, выплаты, иного предмета расчета"},
	})
}
