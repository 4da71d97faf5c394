package registry

import (
	"time"

	"github.com/rufiscal/fdcodec/fdformat"
	"github.com/rufiscal/fdcodec/fdpad"
	"github.com/rufiscal/fdcodec/field"
)

// Field descriptors for the 2100s tag range, generated from the field
// catalogue; see DESIGN.md for the extraction and any Open Question fixups.
var (
	// (2100) Тип кода маркировки  Результат идентификации типа КМ
	MarkingCodeType = field.Field[uint64]{Tag: 2100}
	// (2101) Идентификатор товара  Идентификатор экземпляра товара, подлежащего обязательной маркировке средством идентификации
	ProductId = field.Field[string]{Tag: 2101}
	// (2102) Режим обработки кода маркировки  Режим обработки КМ при реализации товара подлежащего обязательной маркировке средством идентификации. Указанный реквизит должен принимать значение, равное «0»
	MarkingCodeProcessingMode = field.Field[uint64]{Tag: 2102}
	// (2104) Количество непереданных уведомлений  Количество уведомлений о реализации товаров, подлежащих обязательной маркировке средствами идентификации, для которых не была получена квитанция на уведомление или которые не были выгружены в отчет о реализации маркированного товара при работе ККТ в автономном режиме
	UntransmittedNotificationCount = field.Field[uint64]{Tag: 2104}
	// (2105) Коды обработки запроса  Коды результатов обработки запроса о коде маркировки ОИСМ
	RequestProcessingCodes = field.Field[uint64]{Tag: 2105}
	// (2106) Результат проверки сведений о товаре  Результаты проверки кода проверки кода маркировки и проверки сведений о товаре, подлежащем обязательной маркировке средством идентификации, содержащихся у ОИСМ, выполненные для товара, подлежащего обязательной маркировке средством идентификации
	ProductInfoCheckResult = field.Field[uint64]{Tag: 2106}
	// (2107) Результаты проверки маркированных товаров  Признак наличия для товаров, подлежащих обязательной маркировке средствами идентификации, включенных в кассовый чек (БСО), кассовый чек коррекции (БСО коррекции) отрицательных результатов проверки КП КМ или проверки сведений о товаре, содержащихся у ОИСМ
	MarkedProductCheckResults = field.Field[bool]{Tag: 2107}
	// (2108) Мера количества предмета расчета  Единицы измерения количества предмета расчета
	ItemQuantityUnit = field.Field[uint64]{Tag: 2108}
	// (2109) Ответ ОИСМ о статусе товара  Сведения о статусе товара, подлежащего обязательной маркировке средством идентификации, полученные от ОИСМ
	OismProductStatusResponse = field.Field[uint64]{Tag: 2109}
	// (2110) Присвоенный статус товара  Статус, присвоенный товару, подлежащему обязательной маркировке средством идентификации, в результате выполнения расчетов
	AssignedProductStatus = field.Field[uint64]{Tag: 2110}
	// (2111) Коды обработки уведомления  Коды результатов обработки уведомления
	NotificationProcessingCodes = field.Field[uint64]{Tag: 2111}
	// (2112) Признак некорректных кодов маркировки  Признак некорректных кодов маркировки
	IncorrectMarkingCodesFlags = field.Field[uint64]{Tag: 2112}
	// (2113) Признак некорректных запросов и уведомлений  Признак некорректных запросов и уведомлений
	IncorrectRequestsAndNotificationsFlags = field.Field[uint64]{Tag: 2113}
	// (2114) Дата и время запроса  Дата и время формирования запроса
	RequestDateTime = field.Field[time.Time]{Tag: 2114}
	// (2115) Контрольный код КМ  Контрольное число кода маркировки
	MarkingCodeControlCode = field.Field[string]{Tag: 2115}
	// (2116) Вид операции  Вид операции, послуживший основанием для формирования ФД
	OperationType = field.Field[uint64]{Tag: 2116}
)

func init() {
	register([]Entry{
		{Tag: 2100, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(2100) Тип кода маркировки  Результат идентификации типа КМ"},
		{Tag: 2101, Kind: fdformat.KindString, Pad: fdpad.None(u32p(38)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(2101) Идентификатор товара  Идентификатор экземпляра товара, подлежащего обязательной маркировке средством идентификации"},
		{Tag: 2102, Kind: fdformat.KindU8, Pad: fdpad.Right(1, 0x00), JSONName: "labelCodeProcesMode", Aliases: nil, Multi: false, Deprecated: false, Doc: "(2102) Режим обработки кода маркировки  Режим обработки КМ при реализации товара подлежащего обязательной маркировке средством идентификации. Указанный реквизит должен принимать значение, равное «0»"},
		{Tag: 2104, Kind: fdformat.KindU32, Pad: fdpad.Right(4, 0x00), JSONName: "undeliveredNotificationsNumber", Aliases: nil, Multi: false, Deprecated: false, Doc: "(2104) Количество непереданных уведомлений  Количество уведомлений о реализации товаров, подлежащих обязательной маркировке средствами идентификации, для которых не была получена квитанция на уведомление или которые не были выгружены в отчет о реализации маркированного товара при работе ККТ в автономном режиме"},
		{Tag: 2105, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(2105) Коды обработки запроса  Коды результатов обработки запроса о коде маркировки ОИСМ"},
		{Tag: 2106, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "checkingProdInformationResult", Aliases: nil, Multi: false, Deprecated: false, Doc: "(2106) Результат проверки сведений о товаре  Результаты проверки кода проверки кода маркировки и проверки сведений о товаре, подлежащем обязательной маркировке средством идентификации, содержащихся у ОИСМ, выполненные для товара, подлежащего обязательной маркировке средством идентификации"},
		{Tag: 2107, Kind: fdformat.KindBool, Pad: fdpad.Right(1, 0x00), JSONName: "checkingLabeledProdResult", Aliases: nil, Multi: true, Deprecated: false, Doc: "(2107) Результаты проверки маркированных товаров  Признак наличия для товаров, подлежащих обязательной маркировке средствами идентификации, включенных в кассовый чек (БСО), кассовый чек коррекции (БСО коррекции) отрицательных результатов проверки КП КМ или проверки сведений о товаре, содержащихся у ОИСМ"},
		{Tag: 2108, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "itemsQuantityMeasure", Aliases: nil, Multi: false, Deprecated: false, Doc: "(2108) Мера количества предмета расчета  Единицы измерения количества предмета расчета"},
		{Tag: 2109, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(2109) Ответ ОИСМ о статусе товара  Сведения о статусе товара, подлежащего обязательной маркировке средством идентификации, полученные от ОИСМ"},
		{Tag: 2110, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(2110) Присвоенный статус товара  Статус, присвоенный товару, подлежащему обязательной маркировке средством идентификации, в результате выполнения расчетов"},
		{Tag: 2111, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(2111) Коды обработки уведомления  Коды результатов обработки уведомления"},
		{Tag: 2112, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(2112) Признак некорректных кодов маркировки  Признак некорректных кодов маркировки"},
		{Tag: 2113, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(2113) Признак некорректных запросов и уведомлений  Признак некорректных запросов и уведомлений"},
		{Tag: 2114, Kind: fdformat.KindDateTime, Pad: fdpad.None(u32p(4)), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(2114) Дата и время запроса  Дата и время формирования запроса"},
		{Tag: 2115, Kind: fdformat.KindString, Pad: fdpad.Fixed(4), JSONName: "controlCode", Aliases: nil, Multi: false, Deprecated: false, Doc: "(2115) Контрольный код КМ  Контрольное число кода маркировки"},
		{Tag: 2116, Kind: fdformat.KindEnum, Pad: fdpad.Right(1, 0x00), JSONName: "", Aliases: nil, Multi: false, Deprecated: false, Doc: "(2116) Вид операции  Вид операции, послуживший основанием для формирования ФД"},
	})
}
