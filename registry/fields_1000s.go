package registry

import (
	"time"

	"github.com/rufiscal/fdcodec/fdformat"
	"github.com/rufiscal/fdcodec/fdpad"
	"github.com/rufiscal/fdcodec/fdval"
	"github.com/rufiscal/fdcodec/field"
)

// Field descriptors for the 1000s tag range, generated from the field
// catalogue; see DESIGN.md for the extraction and any Open Question fixups.
var (
	// (1000) Наименование документа  Наименование ФД
	DocName = field.Field[string]{Tag: 1000}
	// (1001) Признак автоматического режима  Признак применения ККТ с автоматическим устройством для расчетов
	AutoModeFlag = field.Field[bool]{Tag: 1001}
	// (1002) Признак автономного режима  Признак применения ККТ в режиме, не предусматривающем обязательной передачи ФД в налоговые органы в электронной форме через ОФД
	OfflineModeFlag = field.Field[bool]{Tag: 1002}
	// (1003) Адрес банковского агента
	// Deprecated: retained for wire round-trip fidelity only.
	BankAgentAddress = field.Field[string]{Tag: 1003}
	// (1004) Адрес банковского субагента
	// Deprecated: retained for wire round-trip fidelity only.
	BankSubagentAddress = field.Field[string]{Tag: 1004}
	// (1005) Адрес оператора перевода  Место нахождения оператора по переводу денежных средств
	TransferOperatorAddress = field.Field[string]{Tag: 1005}
	// (1006) Адрес платежного агента
	// Deprecated: retained for wire round-trip fidelity only.
	PaymentAgentAddress = field.Field[string]{Tag: 1006}
	// (1007) Адрес платежного субагента
	// Deprecated: retained for wire round-trip fidelity only.
	PaymentSubagentAddress = field.Field[string]{Tag: 1007}
	// (1008) Телефон или электронный адрес покупателя  Абонентский номер и (или) адрес электронной почты покупателя (клиента) в случае передачи ему кассового чека (БСО), кассового чека коррекции (БСО коррекции) в электронной форме
	BuyerPhoneOrEmail = field.Field[string]{Tag: 1008}
	// (1009) Адрес расчетов  Адрес осуществления расчетов между пользователем и покупателем (клиентом). В случае применения ККТ с автоматическим устройством для расчетов адрес установки этого автоматического устройства для расчетов
	RetailPlaceAddress = field.Field[string]{Tag: 1009}
	// (1010) Размер вознаграждения банковского агента (субагента)
	// Deprecated: retained for wire round-trip fidelity only.
	BankAgentReward = field.Field[uint64]{Tag: 1010}
	// (1011) Размер вознаграждения платежного агента (субагента)
	// Deprecated: retained for wire round-trip fidelity only.
	PaymentAgentReward = field.Field[uint64]{Tag: 1011}
	// (1012) Дата, время  Дата и время формирования ФД
	DateTime = field.Field[time.Time]{Tag: 1012}
	// (1013) Заводской номер ККТ  Заводской номер ККТ
	KktSerial = field.Field[string]{Tag: 1013}
	// (1014) Значение типа строка
	// Deprecated: retained for wire round-trip fidelity only.
	StringValue = field.Field[string]{Tag: 1014}
	// (1015) Значение типа целое
	// Deprecated: retained for wire round-trip fidelity only.
	IntegerValue = field.Field[uint64]{Tag: 1015}
	// (1016) ИНН оператора перевода  Идентификационный номер налогоплательщика оператора по переводу денежных средств
	TransferOperatorInn = field.Field[string]{Tag: 1016}
	// (1017) ИНН ОФД  Идентификационный номер налогоплательщика оператора фискальных данных
	OfdInn = field.Field[string]{Tag: 1017}
	// (1018) ИНН пользователя  Идентификационный номер налогоплательщика пользователя
	UserInn = field.Field[string]{Tag: 1018}
	// (1019) Информационное сообщение
	// Deprecated: retained for wire round-trip fidelity only.
	InfoMessage = field.Field[string]{Tag: 1019}
	// (1020) Сумма расчета, указанного в чеке (БСО)  Сумма расчета с учетом скидок, наценок и НДС, указанная в кассовом чеке (БСО), или сумма коррекции, указанная в кассовом чеке коррекции (БСО коррекции)
	TotalSum = field.Field[uint64]{Tag: 1020}
	// (1021) Кассир  Для кассового чека (БСО), кассового чека коррекции (БСО коррекции) должность и фамилия лица, осуществившего расчет с покупателем (клиентом), оформившего кассовый чек (БСО), кассовый чек коррекции (БСО коррекции) и выдавшего (передавшего) его покупателю (клиенту); для иных фискальных документов - должность и фамилия лица, уполномоченного пользователем на формирование иного фискального документа
	Operator = field.Field[string]{Tag: 1021}
	// (1022) Код ответа ОФД  Код информационного сообщения оператора фискальных данных
	OfdResponseCode = field.Field[uint64]{Tag: 1022}
	// (1023) Количество предмета расчета  Количество товара, работ, услуг, платежей, выплат, иных предметов расчета
	ItemQuantity = field.Field[fdval.VarFloat]{Tag: 1023}
	// (1024) Наименование банковского агента
	// Deprecated: retained for wire round-trip fidelity only.
	BankAgentName = field.Field[string]{Tag: 1024}
	// (1025) Наименование банковского субагента
	// Deprecated: retained for wire round-trip fidelity only.
	BankSubagentName = field.Field[string]{Tag: 1025}
	// (1026) Наименование оператора перевода  Наименование оператора по переводу денежных средств
	TransferOperatorName = field.Field[string]{Tag: 1026}
	// (1027) Наименование платежного агента
	// Deprecated: retained for wire round-trip fidelity only.
	PaymentAgentName = field.Field[string]{Tag: 1027}
	// (1028) Наименование платежного субагента
	// Deprecated: retained for wire round-trip fidelity only.
	PaymentSubagentName = field.Field[string]{Tag: 1028}
	// (1029) Наименование реквизита
	// Deprecated: retained for wire round-trip fidelity only.
	PropertyName = field.Field[string]{Tag: 1029}
	// (1030) Наименование предмета расчета  Наименование товара, работы, услуги, платежа, выплаты, иного предмета расчета
	ItemName = field.Field[string]{Tag: 1030}
	// (1031) Сумма по чеку (БСО) наличными  Сумма расчета, указанная в кассовом чеке (БСО), или сумма корректировки расчета, указанная в кассовом чеке коррекции (БСО коррекции), подлежащая уплате наличными денежными средствами
	TotalCashSum = field.Field[uint64]{Tag: 1031}
	// (1032) Налог
	// Deprecated: retained for wire round-trip fidelity only.
	Tax = field.Field[[]byte]{Tag: 1032}
	// (1033) Налоги
	// Deprecated: retained for wire round-trip fidelity only.
	Taxes = field.Field[[]byte]{Tag: 1033}
	// (1034) Наценка (ставка)
	// Deprecated: retained for wire round-trip fidelity only.
	MarkupRate = field.Field[fdval.VarFloat]{Tag: 1034}
	// (1035) Наценка (сумма)
	// Deprecated: retained for wire round-trip fidelity only.
	MarkupSum = field.Field[uint64]{Tag: 1035}
	// (1036) Номер автомата  Заводской номер автоматического устройства для расчетов
	MachineNumber = field.Field[string]{Tag: 1036}
	// (1037) Регистрационный номер ККТ  Регистрационный номер контрольно-кассовой техники
	KktRegNum = field.Field[string]{Tag: 1037}
	// (1038) Номер смены  Порядковый номер смены с момента формирования отчета о регистрации ККТ или отчета об изменении параметров регистрации ККТ в связи с заменой фискального накопителя
	ShiftNum = field.Field[uint64]{Tag: 1038}
	// (1039) Зарезервирован
	// Deprecated: retained for wire round-trip fidelity only.
	Reserved = field.Field[string]{Tag: 1039}
	// (1040) Номер ФД  Порядковый номер ФД с момента формирования отчета о регистрации ККТ или отчета об изменении параметров регистрации ККТ в связи с заменой фискального накопителя
	DocNum = field.Field[uint64]{Tag: 1040}
	// (1041) Номер ФН  Заводской номер фискального накопителя
	DriveNum = field.Field[string]{Tag: 1041}
	// (1042) Номер чека за смену  Порядковый номер кассового чека, БСО, кассового чека коррекции и БСО коррекции за смену
	ReceiptNum = field.Field[uint64]{Tag: 1042}
	// (1043) Стоимость предмета расчета с учетом скидок и наценок  Стоимость товара, работы, услуги, платежа, выплаты, иного предмета расчета с учетом скидок и наценок
	ItemTotalPrice = field.Field[uint64]{Tag: 1043}
	// (1044) Операция банковского платежного агента  Наименование операции банковского платежного агента, банковского платежного субагента
	PaymentAgentOperation = field.Field[string]{Tag: 1044}
	// (1045) Операция банковского платежного субагента  Наименование операции банковского платежного агента, банковского платежного субагента
	// Deprecated: retained for wire round-trip fidelity only.
	PaymentSubagentOperation = field.Field[string]{Tag: 1045}
	// (1046) Наименование ОФД  Наименование оператора фискальных данных
	OfdName = field.Field[string]{Tag: 1046}
	// (1047) Параметр настройки (содержит теги 1029/1014/1015)
	// Deprecated: retained for wire round-trip fidelity only.
	ConfigParameter = field.Field[[]byte]{Tag: 1047}
	// (1048) Наименование пользователя  Наименование организации-пользователя или фамилия, имя, отчество (при наличии) индивидуального предпринимателя - пользователя
	User = field.Field[string]{Tag: 1048}
	// (1049) Почтовый индекс
	// Deprecated: retained for wire round-trip fidelity only.
	ZipCode = field.Field[string]{Tag: 1049}
	// (1050) Признак исчерпания ресурса ФН  Признак того, что до истечения срока действия ключей фискального признака в фискальном накопителе осталось менее 30 дней
	DriveResourceExhaustionFlag = field.Field[bool]{Tag: 1050}
	// (1051) Признак необходимости срочной замены ФН  Признак того, что до истечения срока действия ключей фискального признака в фискальном накопителе осталось менее 3 дней
	DriveReplacementRequiredFlag = field.Field[bool]{Tag: 1051}
	// (1052) Признак заполнения памяти ФН  Признак того, что память фискального накопителя заполнена более чем на 99%
	DriveMemoryFullFlag = field.Field[bool]{Tag: 1052}
	// (1053) Признак превышения времени ожидания ответа ОФД  Признак того, что подтверждение оператора для переданного фискального документа отсутствует более двух дней
	OfdResponseTimeoutFlag = field.Field[bool]{Tag: 1053}
	// (1054) Признак расчета  Признак расчета (получение средств от покупателя (клиента) «приход», возврат покупателю (клиенту) средств, полученных от него, «возврат прихода», выдача средств покупателю (клиенту) «расход», получение средств от покупателя (клиента), выданных ему, «возврат расхода»)
	PaymentType = field.Field[uint64]{Tag: 1054}
	// (1055) Применяемая система налогообложения  Система налогообложения, применяемая пользователем при расчете с покупателем (клиентом)
	TaxType = field.Field[uint64]{Tag: 1055}
	// (1056) Признак шифрования  Признак передачи фискальных документов оператору фискальных данных в зашифрованном виде
	EncryptionFlag = field.Field[bool]{Tag: 1056}
	// (1057) Признак агента  Признак проведения расчетов (возможности проведения расчетов) пользователем, являющимся агентом, указанным в таблице7
	PaymentAgentTypes = field.Field[uint64]{Tag: 1057}
	// (1058) Признак банковского агента
	// Deprecated: retained for wire round-trip fidelity only.
	BankAgentTypes = field.Field[uint64]{Tag: 1058}
	// (1059) Предмет расчета  Наименование (описание) товара, работы, услуги, платежа, выплаты, иного предмета расчета
	ReceiptItem = field.Field[[]byte]{Tag: 1059}
	// (1060) Адрес сайта ФНС  Адрес сайта федерального органа исполнительной власти (далее – уполномоченный орган), уполномоченного по контролю и надзору за применением ККТ в информационно-телекоммуникационной сети «Интернет» (далее – сеть «Интернет»)
	FnsUrl = field.Field[string]{Tag: 1060}
	// (1061) Адрес сайта ОФД
	OfdUrl = field.Field[string]{Tag: 1061}
	// (1062) Системы налогообложения  Системы налогообложения, которые пользователь может применять при осуществлении расчетов
	TaxationTypes = field.Field[uint64]{Tag: 1062}
	// (1063) Скидка (ставка)
	// Deprecated: retained for wire round-trip fidelity only.
	DiscountRate = field.Field[fdval.VarFloat]{Tag: 1063}
	// (1064) Скидка (сумма)
	// Deprecated: retained for wire round-trip fidelity only.
	DiscountSum = field.Field[uint64]{Tag: 1064}
	// (1065) Сокращенное наименование налога
	// Deprecated: retained for wire round-trip fidelity only.
	TaxName = field.Field[string]{Tag: 1065}
	// (1066) Сообщение
	// Deprecated: retained for wire round-trip fidelity only.
	Message = field.Field[string]{Tag: 1066}
	// (1067) Сообщение оператора для ККТ (содержит теги 1019/1047)
	// Deprecated: retained for wire round-trip fidelity only.
	OperatorMessageToKkt = field.Field[[]byte]{Tag: 1067}
	// (1068) Сообщение оператора для ФН (содержит теги 1022/1047)  Код информационного сообщения оператора фискальных данных
	OperatorMessageToFn = field.Field[[]byte]{Tag: 1068}
	// (1069) Сообщение оператору
	// Deprecated: retained for wire round-trip fidelity only.
	MessageForOperator = field.Field[[]byte]{Tag: 1069}
	// (1070) Ставка налога
	// Deprecated: retained for wire round-trip fidelity only.
	TaxRate = field.Field[fdval.VarFloat]{Tag: 1070}
	// (1071) Сторно товара (реквизиты) (содержит реквизиты товара в обычном формате)
	// Deprecated: retained for wire round-trip fidelity only.
	StornoItems = field.Field[[]byte]{Tag: 1071}
	// (1072) Сумма налога
	// Deprecated: retained for wire round-trip fidelity only.
	TaxSum = field.Field[uint64]{Tag: 1072}
	// (1073) Телефон платежного агента  Номера телефонов платежного агента, платежного субагента, банковского платежного агента, банковского платежного субагента
	PaymentAgentPhone = field.Field[string]{Tag: 1073}
	// (1074) Телефон оператора по приему платежей  Номера контактных телефонов оператора по приему платежей
	PaymentOperatorPhone = field.Field[string]{Tag: 1074}
	// (1075) Телефон оператора перевода  Номера телефонов оператора по переводу денежных средств
	TransferOperatorPhone = field.Field[string]{Tag: 1075}
	// (1076) Тип сообщения
	// Deprecated: retained for wire round-trip fidelity only.
	MessageType = field.Field[string]{Tag: 1076}
	// (1077) ФПД  Фискальный признак документа
	DocFiscalSign = field.Field[[]byte]{Tag: 1077}
	// (1078) ФПО  Фискальный признак оператора
	OperatorFp = field.Field[[]byte]{Tag: 1078}
	// (1079) Цена за единицу предмета расчета с учетом скидок и наценок  Цена за единицу товара, работы, услуги, платежа, выплаты, иного предмета расчета с учетом скидок и наценок
	ItemUnitPrice = field.Field[uint64]{Tag: 1079}
	// (1080) Штриховой код EAN13
	// Deprecated: retained for wire round-trip fidelity only.
	Ean13 = field.Field[string]{Tag: 1080}
	// (1081) Сумма по чеку (БСО) безналичными  Сумма расчета, указанная в кассовом чеке (БСО), или сумма корректировки расчета, указанная в кассовом чеке коррекции (БСО коррекции), подлежащая уплате в безналичном порядке
	TotalEcashSum = field.Field[uint64]{Tag: 1081}
	// (1082) Телефон банковского субагента
	// Deprecated: retained for wire round-trip fidelity only.
	BankSubagentPhone = field.Field[string]{Tag: 1082}
	// (1083) Телефон платежного субагента
	// Deprecated: retained for wire round-trip fidelity only.
	PaymentSubagentPhone = field.Field[string]{Tag: 1083}
	// (1084) Дополнительный реквизит пользователя  Дополнительный реквизит пользователя с учетом особенностей сферы деятельности, в которой осуществляются расчеты
	AdditionalUserProp = field.Field[[]byte]{Tag: 1084}
	// (1085) Наименование дополнительного реквизита пользователя  Наименование дополнительного реквизита пользователя с учетом особенностей сферы деятельности, в которой осуществляются расчеты
	AdditionalUserPropName = field.Field[string]{Tag: 1085}
	// (1086) Значение дополнительного реквизита пользователя  Значение дополнительного реквизита пользователя с учетом особенностей сферы деятельности, в которой осуществляются расчеты
	AdditionalUserPropValue = field.Field[string]{Tag: 1086}
	// (1087) Итог смены
	// Deprecated: retained for wire round-trip fidelity only.
	ShiftTotal = field.Field[uint64]{Tag: 1087}
	// (1088) Приход наличными
	// Deprecated: retained for wire round-trip fidelity only.
	CashSale = field.Field[uint64]{Tag: 1088}
	// (1089) Приход электронными
	// Deprecated: retained for wire round-trip fidelity only.
	EcashSale = field.Field[uint64]{Tag: 1089}
	// (1090) Возврат прихода наличными
	// Deprecated: retained for wire round-trip fidelity only.
	CashSaleReturn = field.Field[uint64]{Tag: 1090}
	// (1091) Возврат прихода электронными
	// Deprecated: retained for wire round-trip fidelity only.
	EcashSaleReturn = field.Field[uint64]{Tag: 1091}
	// (1092) Расход наличными
	// Deprecated: retained for wire round-trip fidelity only.
	CashPurchase = field.Field[uint64]{Tag: 1092}
	// (1093) Расход электронными
	// Deprecated: retained for wire round-trip fidelity only.
	EcashPurchase = field.Field[uint64]{Tag: 1093}
	// (1094) Возврат расхода наличными
	// Deprecated: retained for wire round-trip fidelity only.
	CashPurchaseReturn = field.Field[uint64]{Tag: 1094}
	// (1095) Возврат расхода электронными
	// Deprecated: retained for wire round-trip fidelity only.
	EcashPurchaseReturn = field.Field[uint64]{Tag: 1095}
	// (1096) Номер корректируемого фискального документа
	// Deprecated: retained for wire round-trip fidelity only.
	CorrectedDocNum = field.Field[uint64]{Tag: 1096}
	// (1097) Количество непереданных ФД  Количество ФД, по которым не были получены подтверждения оператора
	UntransmittedDocCount = field.Field[uint64]{Tag: 1097}
	// (1098) Дата первого из непереданных ФД  Дата первого ФД, для которого не было получено подтверждение оператора
	UntransmittedDocDateTime = field.Field[time.Time]{Tag: 1098}
	// (1099) Сводный итог
	// Deprecated: retained for wire round-trip fidelity only.
	SumTotal = field.Field[uint64]{Tag: 1099}
)

func init() {
	register([]Entry{
		{Tag: 1000, Kind: fdformat.KindString, Pad: fdpad.None(nil), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1000) Наименование документа  Наименование ФД"},
		{Tag: 1001, Kind: fdformat.KindBool, Pad: fdpad.Right(1, 0x00), JSONName: "autoMode", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1001) Признак автоматического режима  Признак применения ККТ с автоматическим устройством для расчетов"},
		{Tag: 1002, Kind: fdformat.KindBool, Pad: fdpad.Right(1, 0x00), JSONName: "offlineMode", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1002) Признак автономного режима  Признак применения ККТ в режиме, не предусматривающем обязательной передачи ФД в налоговые органы в электронной форме через ОФД"},
		{Tag: 1003, Kind: fdformat.KindString, Pad: fdpad.None(u32p(256)), JSONName: "", Aliases: nil, Multi: true, Deprecated: true, Doc: "(1003) Адрес банковского агента"},
		{Tag: 1004, Kind: fdformat.KindString, Pad: fdpad.None(u32p(256)), JSONName: "", Aliases: nil, Multi: true, Deprecated: true, Doc: "(1004) Адрес банковского субагента"},
		{Tag: 1005, Kind: fdformat.KindString, Pad: fdpad.None(u32p(256)), JSONName: "transferOperatorAddress", Aliases: nil, Multi: true, Deprecated: false, Doc: "(1005) Адрес оператора перевода  Место нахождения оператора по переводу денежных средств"},
		{Tag: 1006, Kind: fdformat.KindString, Pad: fdpad.None(u32p(256)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1006) Адрес платежного агента"},
		{Tag: 1007, Kind: fdformat.KindString, Pad: fdpad.None(u32p(256)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1007) Адрес платежного субагента"},
		{Tag: 1008, Kind: fdformat.KindString, Pad: fdpad.None(u32p(64)), JSONName: "buyerPhoneOrAddress", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1008) Телефон или электронный адрес покупателя  Абонентский номер и (или) адрес электронной почты покупателя (клиента) в случае передачи ему кассового чека (БСО), кассового чека коррекции (БСО коррекции) в электронной форме"},
		{Tag: 1009, Kind: fdformat.KindString, Pad: fdpad.None(u32p(256)), JSONName: "retailPlaceAddress", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1009) Адрес расчетов  Адрес осуществления расчетов между пользователем и покупателем (клиентом). В случае применения ККТ с автоматическим устройством для расчетов адрес установки этого автоматического устройства для расчетов"},
		{Tag: 1010, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(8)), JSONName: "", Aliases: nil, Multi: true, Deprecated: true, Doc: "(1010) Размер вознаграждения банковского агента (субагента)"},
		{Tag: 1011, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(8)), JSONName: "", Aliases: nil, Multi: true, Deprecated: true, Doc: "(1011) Размер вознаграждения платежного агента (субагента)"},
		{Tag: 1012, Kind: fdformat.KindDateTime, Pad: fdpad.Right(4, 0x00), JSONName: "dateTime", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1012) Дата, время  Дата и время формирования ФД"},
		{Tag: 1013, Kind: fdformat.KindString, Pad: fdpad.None(u32p(20)), JSONName: "kktNumber", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1013) Заводской номер ККТ  Заводской номер ККТ"},
		{Tag: 1014, Kind: fdformat.KindString, Pad: fdpad.None(u32p(64)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1014) Значение типа строка"},
		{Tag: 1015, Kind: fdformat.KindU32, Pad: fdpad.Right(4, 0x00), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1015) Значение типа целое"},
		{Tag: 1016, Kind: fdformat.KindString, Pad: fdpad.Right(12, ' '), JSONName: "transferOperatorInn", Aliases: nil, Multi: true, Deprecated: false, Doc: "(1016) ИНН оператора перевода  Идентификационный номер налогоплательщика оператора по переводу денежных средств"},
		{Tag: 1017, Kind: fdformat.KindString, Pad: fdpad.Right(12, ' '), JSONName: "ofdInn", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1017) ИНН ОФД  Идентификационный номер налогоплательщика оператора фискальных данных"},
		{Tag: 1018, Kind: fdformat.KindString, Pad: fdpad.Right(12, ' '), JSONName: "userInn", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1018) ИНН пользователя  Идентификационный номер налогоплательщика пользователя"},
		{Tag: 1019, Kind: fdformat.KindString, Pad: fdpad.None(u32p(64)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1019) Информационное сообщение"},
		{Tag: 1020, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "totalSum", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1020) Сумма расчета, указанного в чеке (БСО)  Сумма расчета с учетом скидок, наценок и НДС, указанная в кассовом чеке (БСО), или сумма коррекции, указанная в кассовом чеке коррекции (БСО коррекции)"},
		{Tag: 1021, Kind: fdformat.KindString, Pad: fdpad.None(u32p(64)), JSONName: "operator", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1021) Кассир  Для кассового чека (БСО), кассового чека коррекции (БСО коррекции) должность и фамилия лица, осуществившего расчет с покупателем (клиентом), оформившего кассовый чек (БСО), кассовый чек коррекции (БСО коррекции) и выдавшего (передавшего) его покупателю (клиенту); для иных фискальных документов - должность и фамилия лица, уполномоченного пользователем на формирование иного фискального документа"},
		{Tag: 1022, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1022) Код ответа ОФД  Код информационного сообщения оператора фискальных данных"},
		{Tag: 1023, Kind: fdformat.KindVarFloat, Pad: fdpad.None(u32p(8)), JSONName: "quantity", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1023) Количество предмета расчета  Количество товара, работ, услуг, платежей, выплат, иных предметов расчета"},
		{Tag: 1024, Kind: fdformat.KindString, Pad: fdpad.None(u32p(64)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1024) Наименование банковского агента"},
		{Tag: 1025, Kind: fdformat.KindString, Pad: fdpad.None(u32p(64)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1025) Наименование банковского субагента"},
		{Tag: 1026, Kind: fdformat.KindString, Pad: fdpad.None(u32p(64)), JSONName: "transferOperatorName", Aliases: nil, Multi: true, Deprecated: false, Doc: "(1026) Наименование оператора перевода  Наименование оператора по переводу денежных средств"},
		{Tag: 1027, Kind: fdformat.KindString, Pad: fdpad.None(u32p(64)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1027) Наименование платежного агента"},
		{Tag: 1028, Kind: fdformat.KindString, Pad: fdpad.None(u32p(64)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1028) Наименование платежного субагента"},
		{Tag: 1029, Kind: fdformat.KindString, Pad: fdpad.None(u32p(64)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1029) Наименование реквизита"},
		{Tag: 1030, Kind: fdformat.KindString, Pad: fdpad.None(u32p(128)), JSONName: "name", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1030) Наименование предмета расчета  Наименование товара, работы, услуги, платежа, выплаты, иного предмета расчета"},
		{Tag: 1031, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "cashTotalSum", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1031) Сумма по чеку (БСО) наличными  Сумма расчета, указанная в кассовом чеке (БСО), или сумма корректировки расчета, указанная в кассовом чеке коррекции (БСО коррекции), подлежащая уплате наличными денежными средствами"},
		{Tag: 1032, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(33)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1032) Налог"},
		{Tag: 1033, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(33)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1033) Налоги"},
		{Tag: 1034, Kind: fdformat.KindVarFloat, Pad: fdpad.None(u32p(8)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1034) Наценка (ставка)"},
		{Tag: 1035, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(8)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1035) Наценка (сумма)"},
		{Tag: 1036, Kind: fdformat.KindString, Pad: fdpad.None(u32p(20)), JSONName: "machineNumber", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1036) Номер автомата  Заводской номер автоматического устройства для расчетов"},
		{Tag: 1037, Kind: fdformat.KindString, Pad: fdpad.Right(20, ' '), JSONName: "kktRegId", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1037) Регистрационный номер ККТ  Регистрационный номер контрольно-кассовой техники"},
		{Tag: 1038, Kind: fdformat.KindU32, Pad: fdpad.Right(4, 0x00), JSONName: "shiftNumber", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1038) Номер смены  Порядковый номер смены с момента формирования отчета о регистрации ККТ или отчета об изменении параметров регистрации ККТ в связи с заменой фискального накопителя"},
		{Tag: 1039, Kind: fdformat.KindString, Pad: fdpad.None(u32p(12)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1039) Зарезервирован"},
		{Tag: 1040, Kind: fdformat.KindU32, Pad: fdpad.Right(4, 0x00), JSONName: "fiscalDocumentNumber", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1040) Номер ФД  Порядковый номер ФД с момента формирования отчета о регистрации ККТ или отчета об изменении параметров регистрации ККТ в связи с заменой фискального накопителя"},
		{Tag: 1041, Kind: fdformat.KindString, Pad: fdpad.Fixed(16), JSONName: "fiscalDriveNumber", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1041) Номер ФН  Заводской номер фискального накопителя"},
		{Tag: 1042, Kind: fdformat.KindU32, Pad: fdpad.Right(4, 0x00), JSONName: "requestNumber", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1042) Номер чека за смену  Порядковый номер кассового чека, БСО, кассового чека коррекции и БСО коррекции за смену"},
		{Tag: 1043, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "sum", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1043) Стоимость предмета расчета с учетом скидок и наценок  Стоимость товара, работы, услуги, платежа, выплаты, иного предмета расчета с учетом скидок и наценок"},
		{Tag: 1044, Kind: fdformat.KindString, Pad: fdpad.None(u32p(24)), JSONName: "paymentAgentOperation", Aliases: nil, Multi: true, Deprecated: false, Doc: "(1044) Операция банковского платежного агента  Наименование операции банковского платежного агента, банковского платежного субагента"},
		{Tag: 1045, Kind: fdformat.KindString, Pad: fdpad.None(u32p(24)), JSONName: "", Aliases: nil, Multi: true, Deprecated: true, Doc: "(1045) Операция банковского платежного субагента  Наименование операции банковского платежного агента, банковского платежного субагента"},
		{Tag: 1046, Kind: fdformat.KindString, Pad: fdpad.None(u32p(256)), JSONName: "ofdName", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1046) Наименование ОФД  Наименование оператора фискальных данных"},
		{Tag: 1047, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(144)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1047) Параметр настройки (содержит теги 1029/1014/1015)"},
		{Tag: 1048, Kind: fdformat.KindString, Pad: fdpad.None(u32p(256)), JSONName: "user", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1048) Наименование пользователя  Наименование организации-пользователя или фамилия, имя, отчество (при наличии) индивидуального предпринимателя - пользователя"},
		{Tag: 1049, Kind: fdformat.KindString, Pad: fdpad.None(u32p(6)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1049) Почтовый индекс"},
		{Tag: 1050, Kind: fdformat.KindBool, Pad: fdpad.Right(1, 0x00), JSONName: "fiscalDriveExhaustionSign", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1050) Признак исчерпания ресурса ФН  Признак того, что до истечения срока действия ключей фискального признака в фискальном накопителе осталось менее 30 дней"},
		{Tag: 1051, Kind: fdformat.KindBool, Pad: fdpad.Right(1, 0x00), JSONName: "fiscalDriveReplaceRequiredSign", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1051) Признак необходимости срочной замены ФН  Признак того, что до истечения срока действия ключей фискального признака в фискальном накопителе осталось менее 3 дней"},
		{Tag: 1052, Kind: fdformat.KindBool, Pad: fdpad.Right(1, 0x00), JSONName: "fiscalDriveMemoryExceededSign", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1052) Признак заполнения памяти ФН  Признак того, что память фискального накопителя заполнена более чем на 99%"},
		{Tag: 1053, Kind: fdformat.KindBool, Pad: fdpad.Right(1, 0x00), JSONName: "ofdResponseTimeoutSign", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1053) Признак превышения времени ожидания ответа ОФД  Признак того, что подтверждение оператора для переданного фискального документа отсутствует более двух дней"},
		{Tag: 1054, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "operationType", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1054) Признак расчета  Признак расчета (получение средств от покупателя (клиента) «приход», возврат покупателю (клиенту) средств, полученных от него, «возврат прихода», выдача средств покупателю (клиенту) «расход», получение средств от покупателя (клиента), выданных ему, «возврат расхода»)"},
		{Tag: 1055, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, '0'), JSONName: "appliedTaxationType", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1055) Применяемая система налогообложения  Система налогообложения, применяемая пользователем при расчете с покупателем (клиентом)"},
		{Tag: 1056, Kind: fdformat.KindBool, Pad: fdpad.Right(1, 0x00), JSONName: "encryptionSign", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1056) Признак шифрования  Признак передачи фискальных документов оператору фискальных данных в зашифрованном виде"},
		{Tag: 1057, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1057) Признак агента  Признак проведения расчетов (возможности проведения расчетов) пользователем, являющимся агентом, указанным в таблице7"},
		{Tag: 1058, Kind: fdformat.KindU8, Pad: fdpad.Right(1, 0x00), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1058) Признак банковского агента"},
		{Tag: 1059, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(1024)), JSONName: "items", Aliases: nil, Multi: true, Deprecated: false, Doc: "(1059) Предмет расчета  Наименование (описание) товара, работы, услуги, платежа, выплаты, иного предмета расчета"},
		{Tag: 1060, Kind: fdformat.KindString, Pad: fdpad.None(u32p(256)), JSONName: "fnsUrl", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1060) Адрес сайта ФНС  Адрес сайта федерального органа исполнительной власти (далее – уполномоченный орган), уполномоченного по контролю и надзору за применением ККТ в информационно-телекоммуникационной сети «Интернет» (далее – сеть «Интернет»)"},
		{Tag: 1061, Kind: fdformat.KindString, Pad: fdpad.None(u32p(64)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1061) Адрес сайта ОФД"},
		{Tag: 1062, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "taxationType", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1062) Системы налогообложения  Системы налогообложения, которые пользователь может применять при осуществлении расчетов"},
		{Tag: 1063, Kind: fdformat.KindVarFloat, Pad: fdpad.None(u32p(8)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1063) Скидка (ставка)"},
		{Tag: 1064, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(8)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1064) Скидка (сумма)"},
		{Tag: 1065, Kind: fdformat.KindString, Pad: fdpad.None(u32p(10)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1065) Сокращенное наименование налога"},
		{Tag: 1066, Kind: fdformat.KindString, Pad: fdpad.None(u32p(256)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1066) Сообщение"},
		{Tag: 1067, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(328)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1067) Сообщение оператора для ККТ (содержит теги 1019/1047)"},
		{Tag: 1068, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(169)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1068) Сообщение оператора для ФН (содержит теги 1022/1047)  Код информационного сообщения оператора фискальных данных"},
		{Tag: 1069, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(225)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1069) Сообщение оператору"},
		{Tag: 1070, Kind: fdformat.KindVarFloat, Pad: fdpad.None(u32p(5)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1070) Ставка налога"},
		{Tag: 1071, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(132)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1071) Сторно товара (реквизиты) (содержит реквизиты товара в обычном формате)"},
		{Tag: 1072, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(8)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1072) Сумма налога"},
		{Tag: 1073, Kind: fdformat.KindString, Pad: fdpad.None(u32p(19)), JSONName: "paymentAgentPhone", Aliases: nil, Multi: true, Deprecated: false, Doc: "(1073) Телефон платежного агента  Номера телефонов платежного агента, платежного субагента, банковского платежного агента, банковского платежного субагента"},
		{Tag: 1074, Kind: fdformat.KindString, Pad: fdpad.None(u32p(19)), JSONName: "paymentOperatorPhone", Aliases: nil, Multi: true, Deprecated: false, Doc: "(1074) Телефон оператора по приему платежей  Номера контактных телефонов оператора по приему платежей"},
		{Tag: 1075, Kind: fdformat.KindString, Pad: fdpad.None(u32p(19)), JSONName: "transferOperatorPhone", Aliases: nil, Multi: true, Deprecated: false, Doc: "(1075) Телефон оператора перевода  Номера телефонов оператора по переводу денежных средств"},
		{Tag: 1076, Kind: fdformat.KindString, Pad: fdpad.None(u32p(64)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1076) Тип сообщения"},
		{Tag: 1077, Kind: fdformat.KindBytes, Pad: fdpad.Fixed(6), JSONName: "fiscalSign", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1077) ФПД  Фискальный признак документа"},
		{Tag: 1078, Kind: fdformat.KindBytes, Pad: fdpad.None(u32p(16)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1078) ФПО  Фискальный признак оператора"},
		{Tag: 1079, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "price", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1079) Цена за единицу предмета расчета с учетом скидок и наценок  Цена за единицу товара, работы, услуги, платежа, выплаты, иного предмета расчета с учетом скидок и наценок"},
		{Tag: 1080, Kind: fdformat.KindString, Pad: fdpad.None(u32p(16)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1080) Штриховой код EAN13"},
		{Tag: 1081, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "ecashTotalSum", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1081) Сумма по чеку (БСО) безналичными  Сумма расчета, указанная в кассовом чеке (БСО), или сумма корректировки расчета, указанная в кассовом чеке коррекции (БСО коррекции), подлежащая уплате в безналичном порядке"},
		{Tag: 1082, Kind: fdformat.KindString, Pad: fdpad.None(u32p(19)), JSONName: "", Aliases: nil, Multi: true, Deprecated: true, Doc: "(1082) Телефон банковского субагента"},
		{Tag: 1083, Kind: fdformat.KindString, Pad: fdpad.None(u32p(19)), JSONName: "", Aliases: nil, Multi: true, Deprecated: true, Doc: "(1083) Телефон платежного субагента"},
		{Tag: 1084, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(320)), JSONName: "properties", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1084) Дополнительный реквизит пользователя  Дополнительный реквизит пользователя с учетом особенностей сферы деятельности, в которой осуществляются расчеты"},
		{Tag: 1085, Kind: fdformat.KindString, Pad: fdpad.None(u32p(64)), JSONName: "propertyName", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1085) Наименование дополнительного реквизита пользователя  Наименование дополнительного реквизита пользователя с учетом особенностей сферы деятельности, в которой осуществляются расчеты"},
		{Tag: 1086, Kind: fdformat.KindString, Pad: fdpad.None(u32p(256)), JSONName: "propertyValue", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1086) Значение дополнительного реквизита пользователя  Значение дополнительного реквизита пользователя с учетом особенностей сферы деятельности, в которой осуществляются расчеты"},
		{Tag: 1087, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(8)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1087) Итог смены"},
		{Tag: 1088, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(8)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1088) Приход наличными"},
		{Tag: 1089, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(8)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1089) Приход электронными"},
		{Tag: 1090, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(8)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1090) Возврат прихода наличными"},
		{Tag: 1091, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(8)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1091) Возврат прихода электронными"},
		{Tag: 1092, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(8)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1092) Расход наличными"},
		{Tag: 1093, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(8)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1093) Расход электронными"},
		{Tag: 1094, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(8)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1094) Возврат расхода наличными"},
		{Tag: 1095, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(8)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1095) Возврат расхода электронными"},
		{Tag: 1096, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(8)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1096) Номер корректируемого фискального документа"},
		{Tag: 1097, Kind: fdformat.KindU32, Pad: fdpad.Right(4, 0x00), JSONName: "notTransmittedDocumentsQuantity", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1097) Количество непереданных ФД  Количество ФД, по которым не были получены подтверждения оператора"},
		{Tag: 1098, Kind: fdformat.KindDate, Pad: fdpad.Right(4, 0x00), JSONName: "notTransmittedDocumentsDateTime", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1098) Дата первого из непереданных ФД  Дата первого ФД, для которого не было получено подтверждение оператора"},
		{Tag: 1099, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(8)), JSONName: "", Aliases: nil, Multi: false, Deprecated: true, Doc: "(1099) Сводный итог"},
	})
}
