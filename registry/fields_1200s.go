package registry

import (
	"time"

	"github.com/rufiscal/fdcodec/fdformat"
	"github.com/rufiscal/fdcodec/fdpad"
	"github.com/rufiscal/fdcodec/field"
)

// Field descriptors for the 1200s tag range, generated from the field
// catalogue; see DESIGN.md for the extraction and any Open Question fixups.
var (
	// (1200) Сумма НДС за предмет расчета  Сумма налога на добавленную стоимость за товар, работу, услугу, платеж, выплату, иной предмет расчета
	ItemTotalVat = field.Field[uint64]{Tag: 1200}
	// (1201) Общая итоговая сумма в чеках (БСО)  Общие итоговые суммы расчетов, указанных в кассовых чеках (БСО) и (или) кассовых чеках коррекции (БСО коррекции), а также в непереданных кассовых чеках (БСО) и кассовых чеках коррекции (БСО коррекции), совершенных, в том числе в виде ранее внесенных оплат (зачетов авансов), последующих оплат (кредитов) и т.д.
	AggregatedSum = field.Field[uint64]{Tag: 1201}
	// (1203) ИНН кассира  Для кассового чека (БСО), кассового чека коррекции (БСО коррекции) ИНН лица, осуществившего расчет с покупателем (клиентом), оформившего кассовый чек (БСО), кассовый чек коррекции (БСО коррекции) и выдавшего (передавшего) его покупателю (клиенту), для иных фискальных документов ИНН лица, уполномоченного пользователем на формирование фискального документа
	OperatorInn = field.Field[string]{Tag: 1203}
	// (1205) Коды причин изменения сведений о ККТ  Коды причин изменения сведений о ККТ
	KktInfoUpdateReason = field.Field[uint64]{Tag: 1205}
	// (1206) Сообщение оператора  Код информационного сообщения оператора фискальных данных
	OperatorMessage = field.Field[uint64]{Tag: 1206}
	// (1207) Признак торговли подакцизными товарами  Признак применения ККТ при осуществлении торговли подакцизными товарами
	ExciseFlag = field.Field[bool]{Tag: 1207}
	// (1208) Сайт для получения чека  Адрес информационного ресурса, который размещен в сети «Интернет» и по которому кассовый чек (БСО), кассовый чек коррекции (БСО коррекции) может быть бесплатно получен покупателем (клиентом)
	ReceiptRetrievalWebsite = field.Field[string]{Tag: 1208}
	// (1209) Номер версии ФФД  Номер версии ФФД
	FfdVer = field.Field[uint64]{Tag: 1209}
	// (1212) Признак предмета расчета  Признак предмета товара, работы, услуги, платежа, выплаты, иного предмета расчета
	ItemType = field.Field[uint64]{Tag: 1212}
	// (1213) Ресурс ключей ФП  Срок действия ключей фискального признака. Значение реквизита определяется как период времени в днях до даты истечения срока действия ключей
	FiscalSignValidityPeriod = field.Field[uint64]{Tag: 1213}
	// (1214) Признак способа расчета  Признак способа расчета
	PaymentMethod = field.Field[uint64]{Tag: 1214}
	// (1215) Сумма по чеку (БСО) предоплатой (зачетом аванса и (или) предыдущих платежей)  Сумма расчета, указанная в кассовом чеке (БСО), или сумма корректировки расчета, указанная в кассовом чеке коррекции (БСО коррекции), подлежащая уплате ранее внесенной предоплатой (зачетом аванса)
	TotalPrepaidSum = field.Field[uint64]{Tag: 1215}
	// (1216) Сумма по чеку (БСО) постоплатой (в кредит)  Сумма расчета, указанная в кассовом чеке (БСО), или сумма корректировки расчета, указанная в кассовом чеке коррекции (БСО коррекции), подлежащая последующей уплате (в кредит)
	TotalCreditSum = field.Field[uint64]{Tag: 1216}
	// (1217) Сумма по чеку (БСО) встречным предоставлением  Сумма расчета, указанная в кассовом чеке (БСО), или сумма корректировки расчета, указанная в кассовом чеке коррекции (БСО коррекции), подлежащая уплате встречным предоставлением покупателем (клиентом) пользователю предмета расчета, меной и иным аналогичным способом
	TotalProvisionSum = field.Field[uint64]{Tag: 1217}
	// (1218) Итоговая сумма в чеках (БСО) предоплатами (авансами)  Итоговая сумма расчетов, указанных в кассовых чеках (БСО) и кассовых чеках коррекции (БСО коррекции), совершенных с использованием ранее внесенных оплат (зачетов авансов)
	AggregatedPrepaidSum = field.Field[uint64]{Tag: 1218}
	// (1219) Итоговая сумма в чеках (БСО) постоплатами (кредитами)  Итоговая сумма расчетов, указанных в кассовых чеках (БСО) и кассовых чеках коррекции (БСО коррекции), с последующей уплатой (о суммах кредитов)
	AggregatedCreditSum = field.Field[uint64]{Tag: 1219}
	// (1220) Итоговая сумма в чеках (БСО) встречными предоставлениями  Итоговая сумма расчетов, указанных в кассовых чеках (БСО) и кассовых чеках коррекции (БСО коррекции), с уплатой встречными предоставлениями
	AggregatedProvisionSum = field.Field[uint64]{Tag: 1220}
	// (1221) Признак установки принтера в автомате  Признак установки устройства для печати фискальных документов в корпусе автоматического устройства для расчетов
	PrinterFlag = field.Field[bool]{Tag: 1221}
	// (1222) Признак агента по предмету расчета  Признак агента по предмету расчета
	ItemAgentTypes = field.Field[uint64]{Tag: 1222}
	// (1223) Данные агента  Дополнительные сведения о пользователе, являющемся агентом, и о его контрагентах
	PaymentAgentData = field.Field[[]byte]{Tag: 1223}
	// (1224) Данные поставщика  Данные поставщика
	SupplierData = field.Field[[]byte]{Tag: 1224}
	// (1225) Наименование поставщика  Наименование поставщика
	SupplierName = field.Field[string]{Tag: 1225}
	// (1226) ИНН поставщика  ИНН поставщика  Данный реквизит принимает значение «000000000000» в случае если поставщику не присвоен ИНН на территории Российской Федерации.
	SupplierInn = field.Field[string]{Tag: 1226}
	// (1227) Покупатель (клиент)  Наименование организации или фамилия, имя, отчество (при наличии), серия (при наличии) и номер документа удостоверяющего личность покупателя (клиента)
	Client = field.Field[string]{Tag: 1227}
	// (1228) ИНН покупателя (клиента)  ИНН организации или покупателя (клиента)  Данный реквизит принимает значение «000000000000» в случае если покупателю (клиенту) не присвоен ИНН на территории Российской Федерации.
	BuyerInn = field.Field[string]{Tag: 1228}
	// (1229) Акциз  Сумма акциза с учетом копеек, включенная в стоимость предмета расчета
	ExciseDuty = field.Field[uint64]{Tag: 1229}
	// (1230) Код страны происхождения товара  Цифровой код страны происхождения товара в соответствии с Общероссийским классификатором стран мира
	OriginCountry = field.Field[string]{Tag: 1230}
	// (1231) Номер декларации на товар  Номер таможенной декларации (декларации на товар) в соответствии с форматом, установленным решением Комиссии Таможенного союза от 20.05.2010 № 257 (в ред. 17.12.2019 № 223) «О форме декларации на товары и порядке ее заполнения»
	CustomsDeclarationNum = field.Field[string]{Tag: 1231}
	// (1232) Счетчики по признаку «возврат прихода»  Итоговые количества и итоговые суммы кассовых чеков коррекции (БСО коррекции), а также итоговые количества и итоговые суммы непереданных кассовых чеков (БСО) и кассовых чеков коррекции (БСО коррекции) с признаком расчета «возврат прихода»
	UntransmittedSaleReturnStats = field.Field[[]byte]{Tag: 1232}
	// (1233) Счетчики по признаку «возврат расхода»  Итоговые количества и итоговые суммы кассовых чеков коррекции (БСО коррекции), а также итоговые количества и итоговые суммы непереданных кассовых чеков (БСО) и кассовых чеков коррекции (БСО коррекции) с признаком расчета «возврат расхода»
	UntransmittedPurchaseReturnStats = field.Field[[]byte]{Tag: 1233}
	// (1243) Дата рождения покупателя (клиента)  Дата рождения покупателя (клиента)
	BuyerBirthday = field.Field[string]{Tag: 1243}
	// (1244) Гражданство  Числовой код страны, гражданином которой является покупатель (клиент). Код страны указывается в соответствии с Общероссийским классификатором стран мира ОКСМ. При отсутствии у покупателя (клиента) гражданства указывается код страны, выдавшей документ, удостоверяющий его личность
	Citizenship = field.Field[string]{Tag: 1244}
	// (1245) Код вида документа, удостоверяющего личность  Числовой код вида документа, удостоверяющего личность; см. таблицу 116
	BuyerIdType = field.Field[string]{Tag: 1245}
	// (1246) Данные документа, удостоверяющего личность  Реквизиты документа, удостоверяющего личность
	BuyerIdData = field.Field[string]{Tag: 1246}
	// (1254) Адрес покупателя (клиента)  Адрес покупателя (клиента), грузополучателя
	BuyerAddress = field.Field[string]{Tag: 1254}
	// (1256) Сведения о покупателе (клиенте)  Сведения о покупателе (клиенте); см. таблицу 115
	BuyerInfo = field.Field[[]byte]{Tag: 1256}
	// (1260) Отраслевой реквизит предмета расчета  Содержит сведения о нормативных актах, регламентирующих порядок заполнения реквизита «значение  отраслевого реквизита» (тег 1265)
	IndustryItemProp = field.Field[[]byte]{Tag: 1260}
	// (1261) Отраслевой реквизит чека  Содержит сведения о нормативных актах, регламентирующих порядок заполнения реквизита «значение  отраслевого реквизита» (тег 1265)
	IndustryReceiptProp = field.Field[[]byte]{Tag: 1261}
	// (1262) Идентификатор ФОИВ  См. таблицу 149
	FoivId = field.Field[string]{Tag: 1262}
	// (1263) Дата документа основания  Дата нормативного акта федерального органа исполнительной власти, регламентирующего порядок заполнения реквизита «значение  отраслевого реквизита» (тег 1265)
	FoundationDocDateTime = field.Field[string]{Tag: 1263}
	// (1264) Номер документа основания  Номер нормативного акта федерального органа исполнительной власти, регламентирующего порядок заполнения реквизита «значение  отраслевого реквизита» (тег 1265)
	FoundationDocNum = field.Field[string]{Tag: 1264}
	// (1265) Значение отраслевого реквизита  Состав значений, определенных нормативного актом федерального органа исполнительной власти
	IndustryPropValue = field.Field[string]{Tag: 1265}
	// (1270) Операционный реквизит чека  Дополнительный реквизит чека, условия применения и значение которого определяется ФНС России
	OperationalProp = field.Field[[]byte]{Tag: 1270}
	// (1271) Идентификатор операции  Дополнительный реквизит чека, условия применения и значение которого определяется ФНС России
	OperationId = field.Field[uint64]{Tag: 1271}
	// (1272) Данные операции  Дополнительный реквизит чека, условия применения и значение которого определяется ФНС России
	OperationData = field.Field[string]{Tag: 1272}
	// (1273) Дата, время операции  Дополнительный реквизит чека, условия применения и значение которого определяется ФНС России
	OperationDateTime = field.Field[time.Time]{Tag: 1273}
	// (1274) Дополнительный реквизит ОР  Дополнительный реквизит отчета о регистрации (отчета об изменении параметров регистрации)
	FiscalReportAdditionalProp = field.Field[string]{Tag: 1274}
	// (1275) Дополнительные данные ОР  Дополнительные данные отчета о регистрации (отчета об изменении параметров регистрации)
	FiscalReportAdditionalData = field.Field[[]byte]{Tag: 1275}
	// (1276) Дополнительный реквизит ООС  Дополнительный реквизит отчета об открытии смены
	OpenShiftAdditionalProp = field.Field[string]{Tag: 1276}
	// (1277) Дополнительные данные ООС  Дополнительные данные отчета об открытии смены
	OpenShiftAdditionalData = field.Field[[]byte]{Tag: 1277}
	// (1278) Дополнительный реквизит ОЗС  Дополнительный реквизит отчета о закрытии смены
	CloseShiftAdditionalProp = field.Field[string]{Tag: 1278}
	// (1279) Дополнительные данные ОЗС  Дополнительные данные отчета о закрытии смены
	CloseShiftAdditionalData = field.Field[[]byte]{Tag: 1279}
	// (1280) Дополнительный реквизит ОТР  Дополнительный реквизит отчета о текущем состоянии расчетов
	CurrentStateAdditionalAttribute = field.Field[string]{Tag: 1280}
	// (1281) Дополнительные данные ОТР  Дополнительные данные отчета о текущем состоянии расчетов
	CurrentStateAdditionalData = field.Field[[]byte]{Tag: 1281}
	// (1282) Дополнительный реквизит ОЗФН  Дополнительный реквизит отчета о закрытии фискального накопителя
	CloseArchiveAdditionalAttribute = field.Field[string]{Tag: 1282}
	// (1283) Дополнительные данные ОЗФН  Дополнительные данные отчета о закрытии фискального накопителя
	CloseArchiveAdditionalData = field.Field[[]byte]{Tag: 1283}
	// (1290) Признаки условий применения ККТ  См. таблицу 103
	KktUsageFlags = field.Field[uint64]{Tag: 1290}
	// (1291) Дробное количество маркированного товара  Дробное количество маркированного товара
	MarkedProductFractionalQuantity = field.Field[[]byte]{Tag: 1291}
	// (1292) Дробная часть  Дробная часть предмета расчета
	FractionalPart = field.Field[string]{Tag: 1292}
	// (1293) Числитель  Числитель дробной части предмета расчета
	Numerator = field.Field[uint64]{Tag: 1293}
	// (1294) Знаменатель  Знаменатель дробной части предмета расчета
	Denominator = field.Field[uint64]{Tag: 1294}
)

func init() {
	register([]Entry{
		{Tag: 1200, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "ndsSum", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1200) Сумма НДС за предмет расчета  Сумма налога на добавленную стоимость за товар, работу, услугу, платеж, выплату, иной предмет расчета"},
		{Tag: 1201, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "totalSum", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1201) Общая итоговая сумма в чеках (БСО)  Общие итоговые суммы расчетов, указанных в кассовых чеках (БСО) и (или) кассовых чеках коррекции (БСО коррекции), а также в непереданных кассовых чеках (БСО) и кассовых чеках коррекции (БСО коррекции), совершенных, в том числе в виде ранее внесенных оплат (зачетов авансов), последующих оплат (кредитов) и т.д."},
		{Tag: 1203, Kind: fdformat.KindString, Pad: fdpad.Right(12, ' '), JSONName: "operatorInn", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1203) ИНН кассира  Для кассового чека (БСО), кассового чека коррекции (БСО коррекции) ИНН лица, осуществившего расчет с покупателем (клиентом), оформившего кассовый чек (БСО), кассовый чек коррекции (БСО коррекции) и выдавшего (передавшего) его покупателю (клиенту), для иных фискальных документов ИНН лица, уполномоченного пользователем на формирование фискального документа"},
		{Tag: 1205, Kind: fdformat.KindEnum, Pad: fdpad.Right(4, 0x00), JSONName: "correctionKktReasonCode", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1205) Коды причин изменения сведений о ККТ  Коды причин изменения сведений о ККТ"},
		{Tag: 1206, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "operatorMessage", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1206) Сообщение оператора  Код информационного сообщения оператора фискальных данных"},
		{Tag: 1207, Kind: fdformat.KindBool, Pad: fdpad.Right(1, 0x00), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1207) Признак торговли подакцизными товарами  Признак применения ККТ при осуществлении торговли подакцизными товарами"},
		{Tag: 1208, Kind: fdformat.KindString, Pad: fdpad.None(u32p(256)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1208) Сайт для получения чека  Адрес информационного ресурса, который размещен в сети «Интернет» и по которому кассовый чек (БСО), кассовый чек коррекции (БСО коррекции) может быть бесплатно получен покупателем (клиентом)"},
		{Tag: 1209, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "fiscalDocumentFormatVer", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1209) Номер версии ФФД  Номер версии ФФД"},
		{Tag: 1212, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "productType", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1212) Признак предмета расчета  Признак предмета товара, работы, услуги, платежа, выплаты, иного предмета расчета"},
		{Tag: 1213, Kind: fdformat.KindU16, Pad: fdpad.Right(2, 0x00), JSONName: "fdKeyResource", Aliases: []EnclosureAlias{{EnclosingTag: 21, Name: "keyResource"}}, Multi: false, Deprecated: false, Doc: "(1213) Ресурс ключей ФП  Срок действия ключей фискального признака. Значение реквизита определяется как период времени в днях до даты истечения срока действия ключей"},
		{Tag: 1214, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "paymentType", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1214) Признак способа расчета  Признак способа расчета"},
		{Tag: 1215, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "prepaidSum", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1215) Сумма по чеку (БСО) предоплатой (зачетом аванса и (или) предыдущих платежей)  Сумма расчета, указанная в кассовом чеке (БСО), или сумма корректировки расчета, указанная в кассовом чеке коррекции (БСО коррекции), подлежащая уплате ранее внесенной предоплатой (зачетом аванса)"},
		{Tag: 1216, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "creditSum", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1216) Сумма по чеку (БСО) постоплатой (в кредит)  Сумма расчета, указанная в кассовом чеке (БСО), или сумма корректировки расчета, указанная в кассовом чеке коррекции (БСО коррекции), подлежащая последующей уплате (в кредит)"},
		{Tag: 1217, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "provisionSum", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1217) Сумма по чеку (БСО) встречным предоставлением  Сумма расчета, указанная в кассовом чеке (БСО), или сумма корректировки расчета, указанная в кассовом чеке коррекции (БСО коррекции), подлежащая уплате встречным предоставлением покупателем (клиентом) пользователю предмета расчета, меной и иным аналогичным способом"},
		{Tag: 1218, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "prepaidSum", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1218) Итоговая сумма в чеках (БСО) предоплатами (авансами)  Итоговая сумма расчетов, указанных в кассовых чеках (БСО) и кассовых чеках коррекции (БСО коррекции), совершенных с использованием ранее внесенных оплат (зачетов авансов)"},
		{Tag: 1219, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "creditSum", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1219) Итоговая сумма в чеках (БСО) постоплатами (кредитами)  Итоговая сумма расчетов, указанных в кассовых чеках (БСО) и кассовых чеках коррекции (БСО коррекции), с последующей уплатой (о суммах кредитов)"},
		{Tag: 1220, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "provisionSum", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1220) Итоговая сумма в чеках (БСО) встречными предоставлениями  Итоговая сумма расчетов, указанных в кассовых чеках (БСО) и кассовых чеках коррекции (БСО коррекции), с уплатой встречными предоставлениями"},
		{Tag: 1221, Kind: fdformat.KindBool, Pad: fdpad.Right(1, 0x00), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1221) Признак установки принтера в автомате  Признак установки устройства для печати фискальных документов в корпусе автоматического устройства для расчетов"},
		{Tag: 1222, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "paymentAgentByProductType", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1222) Признак агента по предмету расчета  Признак агента по предмету расчета"},
		{Tag: 1223, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(512)), JSONName: "paymentAgentData", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1223) Данные агента  Дополнительные сведения о пользователе, являющемся агентом, и о его контрагентах"},
		{Tag: 1224, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(512)), JSONName: "providerData", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1224) Данные поставщика  Данные поставщика"},
		{Tag: 1225, Kind: fdformat.KindString, Pad: fdpad.None(u32p(256)), JSONName: "providerName", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1225) Наименование поставщика  Наименование поставщика"},
		{Tag: 1226, Kind: fdformat.KindString, Pad: fdpad.Right(12, ' '), JSONName: "providerInn", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1226) ИНН поставщика  ИНН поставщика  Данный реквизит принимает значение «000000000000» в случае если поставщику не присвоен ИНН на территории Российской Федерации."},
		{Tag: 1227, Kind: fdformat.KindString, Pad: fdpad.None(u32p(256)), JSONName: "buyer", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1227) Покупатель (клиент)  Наименование организации или фамилия, имя, отчество (при наличии), серия (при наличии) и номер документа удостоверяющего личность покупателя (клиента)"},
		{Tag: 1228, Kind: fdformat.KindString, Pad: fdpad.Right(12, ' '), JSONName: "buyerInn", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1228) ИНН покупателя (клиента)  ИНН организации или покупателя (клиента)  Данный реквизит принимает значение «000000000000» в случае если покупателю (клиенту) не присвоен ИНН на территории Российской Федерации."},
		{Tag: 1229, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(6)), JSONName: "exciseDuty", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1229) Акциз  Сумма акциза с учетом копеек, включенная в стоимость предмета расчета"},
		{Tag: 1230, Kind: fdformat.KindString, Pad: fdpad.Right(3, ' '), JSONName: "originCountryCode", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1230) Код страны происхождения товара  Цифровой код страны происхождения товара в соответствии с Общероссийским классификатором стран мира"},
		{Tag: 1231, Kind: fdformat.KindString, Pad: fdpad.None(u32p(32)), JSONName: "customEntryNum", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1231) Номер декларации на товар  Номер таможенной декларации (декларации на товар) в соответствии с форматом, установленным решением Комиссии Таможенного союза от 20.05.2010 № 257 (в ред. 17.12.2019 № 223) «О форме декларации на товары и порядке ее заполнения»"},
		{Tag: 1232, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(32)), JSONName: "sellReturnCorrection", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1232) Счетчики по признаку «возврат прихода»  Итоговые количества и итоговые суммы кассовых чеков коррекции (БСО коррекции), а также итоговые количества и итоговые суммы непереданных кассовых чеков (БСО) и кассовых чеков коррекции (БСО коррекции) с признаком расчета «возврат прихода»"},
		{Tag: 1233, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(32)), JSONName: "buyReturnCorrection", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1233) Счетчики по признаку «возврат расхода»  Итоговые количества и итоговые суммы кассовых чеков коррекции (БСО коррекции), а также итоговые количества и итоговые суммы непереданных кассовых чеков (БСО) и кассовых чеков коррекции (БСО коррекции) с признаком расчета «возврат расхода»"},
		{Tag: 1243, Kind: fdformat.KindString, Pad: fdpad.Fixed(10), JSONName: "buyerBirthday", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1243) Дата рождения покупателя (клиента)  Дата рождения покупателя (клиента)"},
		{Tag: 1244, Kind: fdformat.KindString, Pad: fdpad.Right(3, ' '), JSONName: "buyerCitizenship", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1244) Гражданство  Числовой код страны, гражданином которой является покупатель (клиент). Код страны указывается в соответствии с Общероссийским классификатором стран мира ОКСМ. При отсутствии у покупателя (клиента) гражданства указывается код страны, выдавшей документ, удостоверяющий его личность"},
		{Tag: 1245, Kind: fdformat.KindString, Pad: fdpad.Right(2, 0x00), JSONName: "buyerDocumentCode", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1245) Код вида документа, удостоверяющего личность  Числовой код вида документа, удостоверяющего личность; см. таблицу 116"},
		{Tag: 1246, Kind: fdformat.KindString, Pad: fdpad.None(u32p(64)), JSONName: "buyerDocumentData", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1246) Данные документа, удостоверяющего личность  Реквизиты документа, удостоверяющего личность"},
		{Tag: 1254, Kind: fdformat.KindString, Pad: fdpad.None(u32p(256)), JSONName: "buyerAddress", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1254) Адрес покупателя (клиента)  Адрес покупателя (клиента), грузополучателя"},
		{Tag: 1256, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(1024)), JSONName: "buyerInformation", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1256) Сведения о покупателе (клиенте)  Сведения о покупателе (клиенте); см. таблицу 115"},
		{Tag: 1260, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(317)), JSONName: "itemsIndustryDetails", Aliases: nil, Multi: true, Deprecated: false, Doc: "(1260) Отраслевой реквизит предмета расчета  Содержит сведения о нормативных актах, регламентирующих порядок заполнения реквизита «значение  отраслевого реквизита» (тег 1265)"},
		{Tag: 1261, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(317)), JSONName: "industryReceiptDetails", Aliases: nil, Multi: true, Deprecated: false, Doc: "(1261) Отраслевой реквизит чека  Содержит сведения о нормативных актах, регламентирующих порядок заполнения реквизита «значение  отраслевого реквизита» (тег 1265)"},
		{Tag: 1262, Kind: fdformat.KindString, Pad: fdpad.None(u32p(3)), JSONName: "idFoiv", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1262) Идентификатор ФОИВ  См. таблицу 149"},
		{Tag: 1263, Kind: fdformat.KindString, Pad: fdpad.Fixed(10), JSONName: "foundationDocDateTime", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1263) Дата документа основания  Дата нормативного акта федерального органа исполнительной власти, регламентирующего порядок заполнения реквизита «значение  отраслевого реквизита» (тег 1265)"},
		{Tag: 1264, Kind: fdformat.KindString, Pad: fdpad.None(u32p(32)), JSONName: "foundationDocNumber", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1264) Номер документа основания  Номер нормативного акта федерального органа исполнительной власти, регламентирующего порядок заполнения реквизита «значение  отраслевого реквизита» (тег 1265)"},
		{Tag: 1265, Kind: fdformat.KindString, Pad: fdpad.None(u32p(256)), JSONName: "industryPropValue", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1265) Значение отраслевого реквизита  Состав значений, определенных нормативного актом федерального органа исполнительной власти"},
		{Tag: 1270, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(144)), JSONName: "operationalDetails", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1270) Операционный реквизит чека  Дополнительный реквизит чека, условия применения и значение которого определяется ФНС России"},
		{Tag: 1271, Kind: fdformat.KindU8, Pad: fdpad.Right(1, 0x00), JSONName: "operationId", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1271) Идентификатор операции  Дополнительный реквизит чека, условия применения и значение которого определяется ФНС России"},
		{Tag: 1272, Kind: fdformat.KindString, Pad: fdpad.None(u32p(64)), JSONName: "operationData", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1272) Данные операции  Дополнительный реквизит чека, условия применения и значение которого определяется ФНС России"},
		{Tag: 1273, Kind: fdformat.KindDateTime, Pad: fdpad.Right(4, 0x00), JSONName: "dateTime", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1273) Дата, время операции  Дополнительный реквизит чека, условия применения и значение которого определяется ФНС России"},
		{Tag: 1274, Kind: fdformat.KindString, Pad: fdpad.None(u32p(32)), JSONName: "additionalPropsFRC", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1274) Дополнительный реквизит ОР  Дополнительный реквизит отчета о регистрации (отчета об изменении параметров регистрации)"},
		{Tag: 1275, Kind: fdformat.KindBytes, Pad: fdpad.None(u32p(32)), JSONName: "additionalDataFRC", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1275) Дополнительные данные ОР  Дополнительные данные отчета о регистрации (отчета об изменении параметров регистрации)"},
		{Tag: 1276, Kind: fdformat.KindString, Pad: fdpad.None(u32p(32)), JSONName: "additionalPropsOS", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1276) Дополнительный реквизит ООС  Дополнительный реквизит отчета об открытии смены"},
		{Tag: 1277, Kind: fdformat.KindBytes, Pad: fdpad.None(u32p(32)), JSONName: "additionalDataOS", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1277) Дополнительные данные ООС  Дополнительные данные отчета об открытии смены"},
		{Tag: 1278, Kind: fdformat.KindString, Pad: fdpad.None(u32p(32)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1278) Дополнительный реквизит ОЗС  Дополнительный реквизит отчета о закрытии смены"},
		{Tag: 1279, Kind: fdformat.KindBytes, Pad: fdpad.None(u32p(32)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1279) Дополнительные данные ОЗС  Дополнительные данные отчета о закрытии смены"},
		{Tag: 1280, Kind: fdformat.KindString, Pad: fdpad.None(u32p(32)), JSONName: "additionalPropsCSR", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1280) Дополнительный реквизит ОТР  Дополнительный реквизит отчета о текущем состоянии расчетов"},
		{Tag: 1281, Kind: fdformat.KindBytes, Pad: fdpad.None(u32p(32)), JSONName: "additionalDataCSR", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1281) Дополнительные данные ОТР  Дополнительные данные отчета о текущем состоянии расчетов"},
		{Tag: 1282, Kind: fdformat.KindString, Pad: fdpad.None(u32p(32)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1282) Дополнительный реквизит ОЗФН  Дополнительный реквизит отчета о закрытии фискального накопителя"},
		{Tag: 1283, Kind: fdformat.KindBytes, Pad: fdpad.None(u32p(32)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1283) Дополнительные данные ОЗФН  Дополнительные данные отчета о закрытии фискального накопителя"},
		{Tag: 1290, Kind: fdformat.KindEnum, Pad: fdpad.Right(4, 0x00), JSONName: "usageConditionSigns", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1290) Признаки условий применения ККТ  См. таблицу 103"},
		{Tag: 1291, Kind: fdformat.KindObject, Pad: fdpad.None(u32p(52)), JSONName: "labeledProdFractionalQuantity", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1291) Дробное количество маркированного товара  Дробное количество маркированного товара"},
		{Tag: 1292, Kind: fdformat.KindString, Pad: fdpad.None(u32p(24)), JSONName: "fractionalPart", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1292) Дробная часть  Дробная часть предмета расчета"},
		{Tag: 1293, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(8)), JSONName: "numerator", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1293) Числитель  Числитель дробной части предмета расчета"},
		{Tag: 1294, Kind: fdformat.KindU64, Pad: fdpad.None(u32p(8)), JSONName: "denominator", Aliases: nil, Multi: false, Deprecated: false, Doc: "(1294) Знаменатель  Знаменатель дробной части предмета расчета"},
	})
}
