package document

// Schema tables for each document variant, grounded on the field-set
// tables in original_source (structs.rs), using each table's newest FFD
// revision per spec.md §9's "prefer the newer definition" resolution.
// tag:None rows in that source (form-code and envelope-carried fiscal-sign
// placeholders that are not themselves TLV frames) are dropped.
var (
	RegistrationReportSchema = []Slot{
		{Tag: 1000, Presence: PresenceRequired, Multi: false}, // (1000) Наименование документа
		{Tag: 1209, Presence: PresenceRequired, Multi: false}, // (1209) Номер версии ФФД
		{Tag: 1048, Presence: PresenceRequired, Multi: false}, // (1048) Наименование пользователя
		{Tag: 1018, Presence: PresenceRequired, Multi: false}, // (1018) ИНН пользователя
		{Tag: 1062, Presence: PresenceOptional, Multi: false}, // (1062) Системы налогообложения
		{Tag: 1012, Presence: PresenceRequired, Multi: false}, // (1012) Дата, время
		{Tag: 1037, Presence: PresenceRequired, Multi: false}, // (1037) Регистрационный номер ККТ
		{Tag: 1002, Presence: PresenceRequired, Multi: false}, // (1002) Признак автономного режима
		{Tag: 1056, Presence: PresenceRequired, Multi: false}, // (1056) Признак шифрования
		{Tag: 1001, Presence: PresenceRequired, Multi: false}, // (1001) Признак автоматического режима
		{Tag: 1036, Presence: PresenceSometimesRequired, Multi: false}, // (1036) Номер автомата
		{Tag: 1290, Presence: PresenceRequired, Multi: false}, // (1290) Признаки условий применения ККТ
		{Tag: 1013, Presence: PresenceRequired, Multi: false}, // (1013) Заводской номер ККТ
		{Tag: 1021, Presence: PresenceRequired, Multi: false}, // (1021) Кассир
		{Tag: 1203, Presence: PresenceOptional, Multi: false}, // (1203) ИНН кассира
		{Tag: 1009, Presence: PresenceRequired, Multi: false}, // (1009) Адрес расчетов
		{Tag: 1187, Presence: PresenceRequired, Multi: false}, // (1187) Место расчетов
		{Tag: 1060, Presence: PresenceSometimesRequired, Multi: false}, // (1060) Адрес сайта ФНС
		{Tag: 1117, Presence: PresenceSometimesRequired, Multi: false}, // (1117) Адрес электронной почты отправителя чека
		{Tag: 1017, Presence: PresenceSometimesRequired, Multi: false}, // (1017) ИНН ОФД
		{Tag: 1046, Presence: PresenceSometimesRequired, Multi: false}, // (1046) Наименование ОФД
		{Tag: 1188, Presence: PresenceRequired, Multi: false}, // (1188) Версия ККТ
		{Tag: 1189, Presence: PresenceRequired, Multi: false}, // (1189) Версия ФФД ККТ
		{Tag: 1190, Presence: PresenceRequired, Multi: false}, // (1190) Версия ФФД ФН
		{Tag: 1213, Presence: PresenceRequired, Multi: false}, // (1213) Ресурс ключей ФП
		{Tag: 1274, Presence: PresenceSometimesRequired, Multi: false}, // (1274) Дополнительный реквизит ОР
		{Tag: 1275, Presence: PresenceSometimesRequired, Multi: false}, // (1275) Дополнительные данные ОР
		{Tag: 1040, Presence: PresenceRequired, Multi: false}, // (1040) Номер ФД
		{Tag: 1041, Presence: PresenceRequired, Multi: false}, // (1041) Номер ФН
		{Tag: 1077, Presence: PresenceRequired, Multi: false}, // (1077) ФПД
	}
	ShiftStartReportSchema = []Slot{
		{Tag: 1000, Presence: PresenceRequired, Multi: false}, // (1000) Наименование документа
		{Tag: 1209, Presence: PresenceRequired, Multi: false}, // (1209) Номер версии ФФД
		{Tag: 1048, Presence: PresenceRequired, Multi: false}, // (1048) Наименование пользователя
		{Tag: 1018, Presence: PresenceRequired, Multi: false}, // (1018) ИНН пользователя
		{Tag: 1021, Presence: PresenceSometimesRequired, Multi: false}, // (1021) Кассир
		{Tag: 1203, Presence: PresenceOptional, Multi: false}, // (1203) ИНН кассира
		{Tag: 1009, Presence: PresenceRequired, Multi: false}, // (1009) Адрес расчетов
		{Tag: 1187, Presence: PresenceRequired, Multi: false}, // (1187) Место расчетов
		{Tag: 1012, Presence: PresenceRequired, Multi: false}, // (1012) Дата, время
		{Tag: 1038, Presence: PresenceRequired, Multi: false}, // (1038) Номер смены
		{Tag: 1037, Presence: PresenceRequired, Multi: false}, // (1037) Регистрационный номер ККТ
		{Tag: 1053, Presence: PresenceSometimesRequired, Multi: false}, // (1053) Признак превышения времени ожидания ответа ОФД
		{Tag: 1051, Presence: PresenceSometimesRequired, Multi: false}, // (1051) Признак необходимости срочной замены ФН
		{Tag: 1052, Presence: PresenceSometimesRequired, Multi: false}, // (1052) Признак заполнения памяти ФН
		{Tag: 1050, Presence: PresenceSometimesRequired, Multi: false}, // (1050) Признак исчерпания ресурса ФН
		{Tag: 1206, Presence: PresenceSometimesRequired, Multi: false}, // (1206) Сообщение оператора
		{Tag: 1188, Presence: PresenceRequired, Multi: false}, // (1188) Версия ККТ
		{Tag: 1189, Presence: PresenceRequired, Multi: false}, // (1189) Версия ФФД ККТ
		{Tag: 1276, Presence: PresenceSometimesRequired, Multi: false}, // (1276) Дополнительный реквизит ООС
		{Tag: 1277, Presence: PresenceSometimesRequired, Multi: false}, // (1277) Дополнительные данные ООС
		{Tag: 1040, Presence: PresenceRequired, Multi: false}, // (1040) Номер ФД
		{Tag: 1041, Presence: PresenceRequired, Multi: false}, // (1041) Номер ФН
		{Tag: 1077, Presence: PresenceRequired, Multi: false}, // (1077) ФПД
	}
	ReceiptSchema = []Slot{
		{Tag: 1000, Presence: PresenceRequired, Multi: false}, // (1000) Наименование документа
		{Tag: 1209, Presence: PresenceRequired, Multi: false}, // (1209) Номер версии ФФД
		{Tag: 1048, Presence: PresenceOptional, Multi: false}, // (1048) Наименование пользователя
		{Tag: 1018, Presence: PresenceOptional, Multi: false}, // (1018) ИНН пользователя
		{Tag: 1256, Presence: PresenceOptional, Multi: false}, // (1256) Сведения о покупателе (клиенте)
		{Tag: 1042, Presence: PresenceRequired, Multi: false}, // (1042) Номер чека за смену
		{Tag: 1012, Presence: PresenceRequired, Multi: false}, // (1012) Дата, время
		{Tag: 1038, Presence: PresenceRequired, Multi: false}, // (1038) Номер смены
		{Tag: 1054, Presence: PresenceRequired, Multi: false}, // (1054) Признак расчета
		{Tag: 1055, Presence: PresenceOptional, Multi: false}, // (1055) Применяемая система налогообложения
		{Tag: 1021, Presence: PresenceSometimesRequired, Multi: false}, // (1021) Кассир
		{Tag: 1203, Presence: PresenceOptional, Multi: false}, // (1203) ИНН кассира
		{Tag: 1037, Presence: PresenceRequired, Multi: false}, // (1037) Регистрационный номер ККТ
		{Tag: 1036, Presence: PresenceSometimesRequired, Multi: false}, // (1036) Номер автомата
		{Tag: 1009, Presence: PresenceRequired, Multi: false}, // (1009) Адрес расчетов
		{Tag: 1187, Presence: PresenceRequired, Multi: false}, // (1187) Место расчетов
		{Tag: 1008, Presence: PresenceOptional, Multi: false}, // (1008) Телефон или электронный адрес покупателя
		{Tag: 1059, Presence: PresenceRequired, Multi: true}, // (1059) Предмет расчета
		{Tag: 1020, Presence: PresenceRequired, Multi: false}, // (1020) Сумма расчета, указанного в чеке (БСО)
		{Tag: 1031, Presence: PresenceOptional, Multi: false}, // (1031) Сумма по чеку (БСО) наличными
		{Tag: 1081, Presence: PresenceOptional, Multi: false}, // (1081) Сумма по чеку (БСО) безналичными
		{Tag: 1215, Presence: PresenceOptional, Multi: false}, // (1215) Сумма по чеку (БСО) предоплатой (зачетом аванса и (или) предыдущих платежей)
		{Tag: 1216, Presence: PresenceOptional, Multi: false}, // (1216) Сумма по чеку (БСО) постоплатой (в кредит)
		{Tag: 1217, Presence: PresenceOptional, Multi: false}, // (1217) Сумма по чеку (БСО) встречным предоставлением
		{Tag: 1102, Presence: PresenceSometimesRequired, Multi: false}, // (1102) Сумма НДС чека по ставке 20%
		{Tag: 1103, Presence: PresenceSometimesRequired, Multi: false}, // (1103) Сумма НДС чека по ставке 10%
		{Tag: 1104, Presence: PresenceSometimesRequired, Multi: false}, // (1104) Сумма расчета по чеку с НДС по ставке 0%
		{Tag: 1105, Presence: PresenceSometimesRequired, Multi: false}, // (1105) Сумма расчета по чеку без НДС
		{Tag: 1106, Presence: PresenceSometimesRequired, Multi: false}, // (1106) Сумма НДС чека по расч. ставке 20/120
		{Tag: 1107, Presence: PresenceSometimesRequired, Multi: false}, // (1107) Сумма НДС чека по расч. ставке 10/110
		{Tag: 1108, Presence: PresenceSometimesRequired, Multi: false}, // (1108) Признак ККТ для расчетов только в Интернет
		{Tag: 1117, Presence: PresenceSometimesRequired, Multi: false}, // (1117) Адрес электронной почты отправителя чека
		{Tag: 2107, Presence: PresenceSometimesRequired, Multi: true}, // (2107) Результаты проверки маркированных товаров
		{Tag: 1060, Presence: PresenceOptional, Multi: false}, // (1060) Адрес сайта ФНС
		{Tag: 1270, Presence: PresenceSometimesRequired, Multi: false}, // (1270) Операционный реквизит чека
		{Tag: 1192, Presence: PresenceOptional, Multi: false}, // (1192) Дополнительный реквизит чека (БСО)
		{Tag: 1084, Presence: PresenceOptional, Multi: false}, // (1084) Дополнительный реквизит пользователя
		{Tag: 1261, Presence: PresenceSometimesRequired, Multi: true}, // (1261) Отраслевой реквизит чека
		{Tag: 1040, Presence: PresenceRequired, Multi: false}, // (1040) Номер ФД
		{Tag: 1041, Presence: PresenceRequired, Multi: false}, // (1041) Номер ФН
		{Tag: 1077, Presence: PresenceRequired, Multi: false}, // (1077) ФПД
		{Tag: 1196, Presence: PresenceRequired, Multi: false}, // (1196) QR-код
	}
	BsoSchema = []Slot{
		{Tag: 1000, Presence: PresenceRequired, Multi: false}, // (1000) Наименование документа
		{Tag: 1209, Presence: PresenceRequired, Multi: false}, // (1209) Номер версии ФФД
		{Tag: 1048, Presence: PresenceOptional, Multi: false}, // (1048) Наименование пользователя
		{Tag: 1018, Presence: PresenceOptional, Multi: false}, // (1018) ИНН пользователя
		{Tag: 1256, Presence: PresenceOptional, Multi: false}, // (1256) Сведения о покупателе (клиенте)
		{Tag: 1042, Presence: PresenceRequired, Multi: false}, // (1042) Номер чека за смену
		{Tag: 1012, Presence: PresenceRequired, Multi: false}, // (1012) Дата, время
		{Tag: 1038, Presence: PresenceRequired, Multi: false}, // (1038) Номер смены
		{Tag: 1054, Presence: PresenceRequired, Multi: false}, // (1054) Признак расчета
		{Tag: 1055, Presence: PresenceOptional, Multi: false}, // (1055) Применяемая система налогообложения
		{Tag: 1021, Presence: PresenceSometimesRequired, Multi: false}, // (1021) Кассир
		{Tag: 1203, Presence: PresenceOptional, Multi: false}, // (1203) ИНН кассира
		{Tag: 1037, Presence: PresenceRequired, Multi: false}, // (1037) Регистрационный номер ККТ
		{Tag: 1036, Presence: PresenceSometimesRequired, Multi: false}, // (1036) Номер автомата
		{Tag: 1009, Presence: PresenceRequired, Multi: false}, // (1009) Адрес расчетов
		{Tag: 1187, Presence: PresenceRequired, Multi: false}, // (1187) Место расчетов
		{Tag: 1008, Presence: PresenceOptional, Multi: false}, // (1008) Телефон или электронный адрес покупателя
		{Tag: 1059, Presence: PresenceRequired, Multi: true}, // (1059) Предмет расчета
		{Tag: 1020, Presence: PresenceRequired, Multi: false}, // (1020) Сумма расчета, указанного в чеке (БСО)
		{Tag: 1031, Presence: PresenceOptional, Multi: false}, // (1031) Сумма по чеку (БСО) наличными
		{Tag: 1081, Presence: PresenceOptional, Multi: false}, // (1081) Сумма по чеку (БСО) безналичными
		{Tag: 1215, Presence: PresenceOptional, Multi: false}, // (1215) Сумма по чеку (БСО) предоплатой (зачетом аванса и (или) предыдущих платежей)
		{Tag: 1216, Presence: PresenceOptional, Multi: false}, // (1216) Сумма по чеку (БСО) постоплатой (в кредит)
		{Tag: 1217, Presence: PresenceOptional, Multi: false}, // (1217) Сумма по чеку (БСО) встречным предоставлением
		{Tag: 1102, Presence: PresenceSometimesRequired, Multi: false}, // (1102) Сумма НДС чека по ставке 20%
		{Tag: 1103, Presence: PresenceSometimesRequired, Multi: false}, // (1103) Сумма НДС чека по ставке 10%
		{Tag: 1104, Presence: PresenceSometimesRequired, Multi: false}, // (1104) Сумма расчета по чеку с НДС по ставке 0%
		{Tag: 1105, Presence: PresenceSometimesRequired, Multi: false}, // (1105) Сумма расчета по чеку без НДС
		{Tag: 1106, Presence: PresenceSometimesRequired, Multi: false}, // (1106) Сумма НДС чека по расч. ставке 20/120
		{Tag: 1107, Presence: PresenceSometimesRequired, Multi: false}, // (1107) Сумма НДС чека по расч. ставке 10/110
		{Tag: 1108, Presence: PresenceSometimesRequired, Multi: false}, // (1108) Признак ККТ для расчетов только в Интернет
		{Tag: 1117, Presence: PresenceSometimesRequired, Multi: false}, // (1117) Адрес электронной почты отправителя чека
		{Tag: 2107, Presence: PresenceSometimesRequired, Multi: true}, // (2107) Результаты проверки маркированных товаров
		{Tag: 1060, Presence: PresenceOptional, Multi: false}, // (1060) Адрес сайта ФНС
		{Tag: 1270, Presence: PresenceSometimesRequired, Multi: false}, // (1270) Операционный реквизит чека
		{Tag: 1192, Presence: PresenceOptional, Multi: false}, // (1192) Дополнительный реквизит чека (БСО)
		{Tag: 1084, Presence: PresenceOptional, Multi: false}, // (1084) Дополнительный реквизит пользователя
		{Tag: 1261, Presence: PresenceSometimesRequired, Multi: true}, // (1261) Отраслевой реквизит чека
		{Tag: 1040, Presence: PresenceRequired, Multi: false}, // (1040) Номер ФД
		{Tag: 1041, Presence: PresenceRequired, Multi: false}, // (1041) Номер ФН
		{Tag: 1077, Presence: PresenceRequired, Multi: false}, // (1077) ФПД
		{Tag: 1196, Presence: PresenceRequired, Multi: false}, // (1196) QR-код
	}
	ShiftEndReportSchema = []Slot{
		{Tag: 1000, Presence: PresenceRequired, Multi: false}, // (1000) Наименование документа
		{Tag: 1209, Presence: PresenceRequired, Multi: false}, // (1209) Номер версии ФФД
		{Tag: 1048, Presence: PresenceRequired, Multi: false}, // (1048) Наименование пользователя
		{Tag: 1018, Presence: PresenceRequired, Multi: false}, // (1018) ИНН пользователя
		{Tag: 1021, Presence: PresenceSometimesRequired, Multi: false}, // (1021) Кассир
		{Tag: 1203, Presence: PresenceOptional, Multi: false}, // (1203) ИНН кассира
		{Tag: 1009, Presence: PresenceRequired, Multi: false}, // (1009) Адрес расчетов
		{Tag: 1187, Presence: PresenceRequired, Multi: false}, // (1187) Место расчетов
		{Tag: 1012, Presence: PresenceRequired, Multi: false}, // (1012) Дата, время
		{Tag: 1038, Presence: PresenceRequired, Multi: false}, // (1038) Номер смены
		{Tag: 1037, Presence: PresenceRequired, Multi: false}, // (1037) Регистрационный номер ККТ
		{Tag: 1118, Presence: PresenceRequired, Multi: false}, // (1118) Количество кассовых чеков (БСО) за смену
		{Tag: 1111, Presence: PresenceRequired, Multi: false}, // (1111) Общее количество ФД за смену
		{Tag: 1097, Presence: PresenceSometimesRequired, Multi: false}, // (1097) Количество непереданных ФД
		{Tag: 2104, Presence: PresenceSometimesRequired, Multi: false}, // (2104) Количество непереданных уведомлений
		{Tag: 1098, Presence: PresenceSometimesRequired, Multi: false}, // (1098) Дата первого из непереданных ФД
		{Tag: 1053, Presence: PresenceSometimesRequired, Multi: false}, // (1053) Признак превышения времени ожидания ответа ОФД
		{Tag: 1051, Presence: PresenceSometimesRequired, Multi: false}, // (1051) Признак необходимости срочной замены ФН
		{Tag: 1052, Presence: PresenceSometimesRequired, Multi: false}, // (1052) Признак заполнения памяти ФН
		{Tag: 1050, Presence: PresenceSometimesRequired, Multi: false}, // (1050) Признак исчерпания ресурса ФН
		{Tag: 1206, Presence: PresenceSometimesRequired, Multi: false}, // (1206) Сообщение оператора
		{Tag: 2112, Presence: PresenceSometimesRequired, Multi: false}, // (2112) Признак некорректных кодов маркировки
		{Tag: 2113, Presence: PresenceSometimesRequired, Multi: false}, // (2113) Признак некорректных запросов и уведомлений
		{Tag: 1194, Presence: PresenceRequired, Multi: false}, // (1194) Счетчики итогов смены
		{Tag: 1157, Presence: PresenceRequired, Multi: false}, // (1157) Счетчики итогов ФН
		{Tag: 1213, Presence: PresenceRequired, Multi: false}, // (1213) Ресурс ключей ФП
		{Tag: 1278, Presence: PresenceSometimesRequired, Multi: false}, // (1278) Дополнительный реквизит ОЗС
		{Tag: 1279, Presence: PresenceSometimesRequired, Multi: false}, // (1279) Дополнительные данные ОЗС
		{Tag: 1040, Presence: PresenceRequired, Multi: false}, // (1040) Номер ФД
		{Tag: 1041, Presence: PresenceRequired, Multi: false}, // (1041) Номер ФН
		{Tag: 1077, Presence: PresenceRequired, Multi: false}, // (1077) ФПД
	}
	FnCloseReportSchema = []Slot{
		{Tag: 1000, Presence: PresenceRequired, Multi: false}, // (1000) Наименование документа
		{Tag: 1209, Presence: PresenceRequired, Multi: false}, // (1209) Номер версии ФФД
		{Tag: 1048, Presence: PresenceRequired, Multi: false}, // (1048) Наименование пользователя
		{Tag: 1018, Presence: PresenceRequired, Multi: false}, // (1018) ИНН пользователя
		{Tag: 1021, Presence: PresenceSometimesRequired, Multi: false}, // (1021) Кассир
		{Tag: 1203, Presence: PresenceOptional, Multi: false}, // (1203) ИНН кассира
		{Tag: 1009, Presence: PresenceRequired, Multi: false}, // (1009) Адрес расчетов
		{Tag: 1187, Presence: PresenceRequired, Multi: false}, // (1187) Место расчетов
		{Tag: 1012, Presence: PresenceRequired, Multi: false}, // (1012) Дата, время
		{Tag: 1038, Presence: PresenceRequired, Multi: false}, // (1038) Номер смены
		{Tag: 1037, Presence: PresenceRequired, Multi: false}, // (1037) Регистрационный номер ККТ
		{Tag: 1157, Presence: PresenceRequired, Multi: false}, // (1157) Счетчики итогов ФН
		{Tag: 1282, Presence: PresenceSometimesRequired, Multi: false}, // (1282) Дополнительный реквизит ОЗФН
		{Tag: 1283, Presence: PresenceSometimesRequired, Multi: false}, // (1283) Дополнительные данные ОЗФН
		{Tag: 1040, Presence: PresenceRequired, Multi: false}, // (1040) Номер ФД
		{Tag: 1041, Presence: PresenceRequired, Multi: false}, // (1041) Номер ФН
		{Tag: 1077, Presence: PresenceRequired, Multi: false}, // (1077) ФПД
	}
	RegistrationParamUpdateReportSchema = []Slot{
		{Tag: 1205, Presence: PresenceRequired, Multi: false}, // (1205) Коды причин изменения сведений о ККТ
		{Tag: 1157, Presence: PresenceSometimesRequired, Multi: false}, // (1157) Счетчики итогов ФН
	}
	PaymentStateReportSchema = []Slot{
		{Tag: 1000, Presence: PresenceRequired, Multi: false}, // (1000) Наименование документа
		{Tag: 1209, Presence: PresenceRequired, Multi: false}, // (1209) Номер версии ФФД
		{Tag: 1048, Presence: PresenceRequired, Multi: false}, // (1048) Наименование пользователя
		{Tag: 1018, Presence: PresenceRequired, Multi: false}, // (1018) ИНН пользователя
		{Tag: 1009, Presence: PresenceRequired, Multi: false}, // (1009) Адрес расчетов
		{Tag: 1187, Presence: PresenceRequired, Multi: false}, // (1187) Место расчетов
		{Tag: 1012, Presence: PresenceRequired, Multi: false}, // (1012) Дата, время
		{Tag: 1038, Presence: PresenceSometimesRequired, Multi: false}, // (1038) Номер смены
		{Tag: 1002, Presence: PresenceSometimesRequired, Multi: false}, // (1002) Признак автономного режима
		{Tag: 1116, Presence: PresenceSometimesRequired, Multi: false}, // (1116) Номер первого непереданного документа
		{Tag: 1097, Presence: PresenceSometimesRequired, Multi: false}, // (1097) Количество непереданных ФД
		{Tag: 2104, Presence: PresenceSometimesRequired, Multi: false}, // (2104) Количество непереданных уведомлений
		{Tag: 1098, Presence: PresenceSometimesRequired, Multi: false}, // (1098) Дата первого из непереданных ФД
		{Tag: 1213, Presence: PresenceRequired, Multi: false}, // (1213) Ресурс ключей ФП
		{Tag: 1037, Presence: PresenceRequired, Multi: false}, // (1037) Регистрационный номер ККТ
		{Tag: 1157, Presence: PresenceRequired, Multi: false}, // (1157) Счетчики итогов ФН
		{Tag: 1158, Presence: PresenceSometimesRequired, Multi: false}, // (1158) Счетчики итогов непереданных ФД
		{Tag: 1280, Presence: PresenceSometimesRequired, Multi: false}, // (1280) Дополнительный реквизит ОТР
		{Tag: 1281, Presence: PresenceSometimesRequired, Multi: false}, // (1281) Дополнительные данные ОТР
		{Tag: 1040, Presence: PresenceRequired, Multi: false}, // (1040) Номер ФД
		{Tag: 1041, Presence: PresenceRequired, Multi: false}, // (1041) Номер ФН
		{Tag: 1077, Presence: PresenceRequired, Multi: false}, // (1077) ФПД
	}
	CorrectionReceiptSchema = []Slot{
		{Tag: 1000, Presence: PresenceRequired, Multi: false}, // (1000) Наименование документа
		{Tag: 1209, Presence: PresenceRequired, Multi: false}, // (1209) Номер версии ФФД
		{Tag: 1048, Presence: PresenceOptional, Multi: false}, // (1048) Наименование пользователя
		{Tag: 1018, Presence: PresenceOptional, Multi: false}, // (1018) ИНН пользователя
		{Tag: 1256, Presence: PresenceOptional, Multi: false}, // (1256) Сведения о покупателе (клиенте)
		{Tag: 1042, Presence: PresenceRequired, Multi: false}, // (1042) Номер чека за смену
		{Tag: 1012, Presence: PresenceRequired, Multi: false}, // (1012) Дата, время
		{Tag: 1038, Presence: PresenceRequired, Multi: false}, // (1038) Номер смены
		{Tag: 1054, Presence: PresenceRequired, Multi: false}, // (1054) Признак расчета
		{Tag: 1055, Presence: PresenceOptional, Multi: false}, // (1055) Применяемая система налогообложения
		{Tag: 1021, Presence: PresenceSometimesRequired, Multi: false}, // (1021) Кассир
		{Tag: 1203, Presence: PresenceOptional, Multi: false}, // (1203) ИНН кассира
		{Tag: 1037, Presence: PresenceRequired, Multi: false}, // (1037) Регистрационный номер ККТ
		{Tag: 1173, Presence: PresenceOptional, Multi: false}, // (1173) Тип коррекции
		{Tag: 1174, Presence: PresenceRequired, Multi: false}, // (1174) Основание для коррекции
		{Tag: 1036, Presence: PresenceSometimesRequired, Multi: false}, // (1036) Номер автомата
		{Tag: 1009, Presence: PresenceRequired, Multi: false}, // (1009) Адрес расчетов
		{Tag: 1187, Presence: PresenceRequired, Multi: false}, // (1187) Место расчетов
		{Tag: 1008, Presence: PresenceOptional, Multi: false}, // (1008) Телефон или электронный адрес покупателя
		{Tag: 1059, Presence: PresenceRequired, Multi: true}, // (1059) Предмет расчета
		{Tag: 1020, Presence: PresenceRequired, Multi: false}, // (1020) Сумма расчета, указанного в чеке (БСО)
		{Tag: 1031, Presence: PresenceOptional, Multi: false}, // (1031) Сумма по чеку (БСО) наличными
		{Tag: 1081, Presence: PresenceOptional, Multi: false}, // (1081) Сумма по чеку (БСО) безналичными
		{Tag: 1215, Presence: PresenceOptional, Multi: false}, // (1215) Сумма по чеку (БСО) предоплатой (зачетом аванса и (или) предыдущих платежей)
		{Tag: 1216, Presence: PresenceOptional, Multi: false}, // (1216) Сумма по чеку (БСО) постоплатой (в кредит)
		{Tag: 1217, Presence: PresenceOptional, Multi: false}, // (1217) Сумма по чеку (БСО) встречным предоставлением
		{Tag: 1102, Presence: PresenceSometimesRequired, Multi: false}, // (1102) Сумма НДС чека по ставке 20%
		{Tag: 1103, Presence: PresenceSometimesRequired, Multi: false}, // (1103) Сумма НДС чека по ставке 10%
		{Tag: 1104, Presence: PresenceSometimesRequired, Multi: false}, // (1104) Сумма расчета по чеку с НДС по ставке 0%
		{Tag: 1105, Presence: PresenceSometimesRequired, Multi: false}, // (1105) Сумма расчета по чеку без НДС
		{Tag: 1106, Presence: PresenceSometimesRequired, Multi: false}, // (1106) Сумма НДС чека по расч. ставке 20/120
		{Tag: 1107, Presence: PresenceSometimesRequired, Multi: false}, // (1107) Сумма НДС чека по расч. ставке 10/110
		{Tag: 1108, Presence: PresenceSometimesRequired, Multi: false}, // (1108) Признак ККТ для расчетов только в Интернет
		{Tag: 1117, Presence: PresenceSometimesRequired, Multi: false}, // (1117) Адрес электронной почты отправителя чека
		{Tag: 2107, Presence: PresenceOptional, Multi: true}, // (2107) Результаты проверки маркированных товаров
		{Tag: 1060, Presence: PresenceOptional, Multi: false}, // (1060) Адрес сайта ФНС
		{Tag: 1270, Presence: PresenceSometimesRequired, Multi: false}, // (1270) Операционный реквизит чека
		{Tag: 1192, Presence: PresenceOptional, Multi: false}, // (1192) Дополнительный реквизит чека (БСО)
		{Tag: 1084, Presence: PresenceOptional, Multi: false}, // (1084) Дополнительный реквизит пользователя
		{Tag: 1261, Presence: PresenceSometimesRequired, Multi: true}, // (1261) Отраслевой реквизит чека
		{Tag: 1040, Presence: PresenceRequired, Multi: false}, // (1040) Номер ФД
		{Tag: 1041, Presence: PresenceRequired, Multi: false}, // (1041) Номер ФН
		{Tag: 1077, Presence: PresenceRequired, Multi: false}, // (1077) ФПД
		{Tag: 1196, Presence: PresenceOptional, Multi: false}, // (1196) QR-код
	}
	CorrectionBsoSchema = []Slot{
		{Tag: 1000, Presence: PresenceRequired, Multi: false}, // (1000) Наименование документа
		{Tag: 1209, Presence: PresenceRequired, Multi: false}, // (1209) Номер версии ФФД
		{Tag: 1048, Presence: PresenceOptional, Multi: false}, // (1048) Наименование пользователя
		{Tag: 1018, Presence: PresenceOptional, Multi: false}, // (1018) ИНН пользователя
		{Tag: 1256, Presence: PresenceOptional, Multi: false}, // (1256) Сведения о покупателе (клиенте)
		{Tag: 1042, Presence: PresenceRequired, Multi: false}, // (1042) Номер чека за смену
		{Tag: 1012, Presence: PresenceRequired, Multi: false}, // (1012) Дата, время
		{Tag: 1038, Presence: PresenceRequired, Multi: false}, // (1038) Номер смены
		{Tag: 1054, Presence: PresenceRequired, Multi: false}, // (1054) Признак расчета
		{Tag: 1055, Presence: PresenceOptional, Multi: false}, // (1055) Применяемая система налогообложения
		{Tag: 1021, Presence: PresenceSometimesRequired, Multi: false}, // (1021) Кассир
		{Tag: 1203, Presence: PresenceOptional, Multi: false}, // (1203) ИНН кассира
		{Tag: 1037, Presence: PresenceRequired, Multi: false}, // (1037) Регистрационный номер ККТ
		{Tag: 1173, Presence: PresenceOptional, Multi: false}, // (1173) Тип коррекции
		{Tag: 1174, Presence: PresenceRequired, Multi: false}, // (1174) Основание для коррекции
		{Tag: 1036, Presence: PresenceSometimesRequired, Multi: false}, // (1036) Номер автомата
		{Tag: 1009, Presence: PresenceRequired, Multi: false}, // (1009) Адрес расчетов
		{Tag: 1187, Presence: PresenceRequired, Multi: false}, // (1187) Место расчетов
		{Tag: 1008, Presence: PresenceOptional, Multi: false}, // (1008) Телефон или электронный адрес покупателя
		{Tag: 1059, Presence: PresenceRequired, Multi: true}, // (1059) Предмет расчета
		{Tag: 1020, Presence: PresenceRequired, Multi: false}, // (1020) Сумма расчета, указанного в чеке (БСО)
		{Tag: 1031, Presence: PresenceOptional, Multi: false}, // (1031) Сумма по чеку (БСО) наличными
		{Tag: 1081, Presence: PresenceOptional, Multi: false}, // (1081) Сумма по чеку (БСО) безналичными
		{Tag: 1215, Presence: PresenceOptional, Multi: false}, // (1215) Сумма по чеку (БСО) предоплатой (зачетом аванса и (или) предыдущих платежей)
		{Tag: 1216, Presence: PresenceOptional, Multi: false}, // (1216) Сумма по чеку (БСО) постоплатой (в кредит)
		{Tag: 1217, Presence: PresenceOptional, Multi: false}, // (1217) Сумма по чеку (БСО) встречным предоставлением
		{Tag: 1102, Presence: PresenceSometimesRequired, Multi: false}, // (1102) Сумма НДС чека по ставке 20%
		{Tag: 1103, Presence: PresenceSometimesRequired, Multi: false}, // (1103) Сумма НДС чека по ставке 10%
		{Tag: 1104, Presence: PresenceSometimesRequired, Multi: false}, // (1104) Сумма расчета по чеку с НДС по ставке 0%
		{Tag: 1105, Presence: PresenceSometimesRequired, Multi: false}, // (1105) Сумма расчета по чеку без НДС
		{Tag: 1106, Presence: PresenceSometimesRequired, Multi: false}, // (1106) Сумма НДС чека по расч. ставке 20/120
		{Tag: 1107, Presence: PresenceSometimesRequired, Multi: false}, // (1107) Сумма НДС чека по расч. ставке 10/110
		{Tag: 1108, Presence: PresenceSometimesRequired, Multi: false}, // (1108) Признак ККТ для расчетов только в Интернет
		{Tag: 1117, Presence: PresenceSometimesRequired, Multi: false}, // (1117) Адрес электронной почты отправителя чека
		{Tag: 2107, Presence: PresenceOptional, Multi: true}, // (2107) Результаты проверки маркированных товаров
		{Tag: 1060, Presence: PresenceOptional, Multi: false}, // (1060) Адрес сайта ФНС
		{Tag: 1270, Presence: PresenceSometimesRequired, Multi: false}, // (1270) Операционный реквизит чека
		{Tag: 1192, Presence: PresenceOptional, Multi: false}, // (1192) Дополнительный реквизит чека (БСО)
		{Tag: 1084, Presence: PresenceOptional, Multi: false}, // (1084) Дополнительный реквизит пользователя
		{Tag: 1261, Presence: PresenceSometimesRequired, Multi: true}, // (1261) Отраслевой реквизит чека
		{Tag: 1040, Presence: PresenceRequired, Multi: false}, // (1040) Номер ФД
		{Tag: 1041, Presence: PresenceRequired, Multi: false}, // (1041) Номер ФН
		{Tag: 1077, Presence: PresenceRequired, Multi: false}, // (1077) ФПД
		{Tag: 1196, Presence: PresenceOptional, Multi: false}, // (1196) QR-код
	}
	MarkingCodeRequestSchema = []Slot{
		{Tag: 2001, Presence: PresenceRequired, Multi: false}, // (2001) Номер запроса
		{Tag: 1018, Presence: PresenceRequired, Multi: false}, // (1018) ИНН пользователя
		{Tag: 2114, Presence: PresenceRequired, Multi: false}, // (2114) Дата и время запроса
		{Tag: 1041, Presence: PresenceRequired, Multi: false}, // (1041) Номер ФН
		{Tag: 2004, Presence: PresenceRequired, Multi: false}, // (2004) Результат проверки КМ
		{Tag: 2003, Presence: PresenceRequired, Multi: false}, // (2003) Планируемый статус товара
		{Tag: 1023, Presence: PresenceSometimesRequired, Multi: false}, // (1023) Количество предмета расчета
		{Tag: 2108, Presence: PresenceSometimesRequired, Multi: false}, // (2108) Мера количества предмета расчета
		{Tag: 1291, Presence: PresenceSometimesRequired, Multi: false}, // (1291) Дробное количество маркированного товара
		{Tag: 2100, Presence: PresenceRequired, Multi: false}, // (2100) Тип кода маркировки
		{Tag: 2000, Presence: PresenceRequired, Multi: false}, // (2000) Код маркировки
		{Tag: 2102, Presence: PresenceRequired, Multi: false}, // (2102) Режим обработки кода маркировки
	}
	MarkedProductSaleNotificationSchema = []Slot{
		{Tag: 2002, Presence: PresenceRequired, Multi: false}, // (2002) Номер уведомления
		{Tag: 1012, Presence: PresenceRequired, Multi: false}, // (1012) Дата, время
		{Tag: 1041, Presence: PresenceRequired, Multi: false}, // (1041) Номер ФН
		{Tag: 1018, Presence: PresenceSometimesRequired, Multi: false}, // (1018) ИНН пользователя
		{Tag: 1228, Presence: PresenceSometimesRequired, Multi: false}, // (1228) ИНН покупателя (клиента)
		{Tag: 1009, Presence: PresenceSometimesRequired, Multi: false}, // (1009) Адрес расчетов
		{Tag: 1055, Presence: PresenceRequired, Multi: false}, // (1055) Применяемая система налогообложения
		{Tag: 1054, Presence: PresenceRequired, Multi: false}, // (1054) Признак расчета
		{Tag: 2116, Presence: PresenceRequired, Multi: false}, // (2116) Вид операции
		{Tag: 2007, Presence: PresenceRequired, Multi: true}, // (2007) Данные о маркированном товаре
		{Tag: 1261, Presence: PresenceSometimesRequired, Multi: true}, // (1261) Отраслевой реквизит чека
		{Tag: 1084, Presence: PresenceOptional, Multi: false}, // (1084) Дополнительный реквизит пользователя
	}
	MarkingResponseSchema = []Slot{
		{Tag: 2001, Presence: PresenceRequired, Multi: false}, // (2001) Номер запроса
		{Tag: 2114, Presence: PresenceRequired, Multi: false}, // (2114) Дата и время запроса
		{Tag: 2102, Presence: PresenceSometimesRequired, Multi: false}, // (2102) Режим обработки кода маркировки
		{Tag: 2100, Presence: PresenceSometimesRequired, Multi: false}, // (2100) Тип кода маркировки
		{Tag: 2109, Presence: PresenceSometimesRequired, Multi: false}, // (2109) Ответ ОИСМ о статусе товара
		{Tag: 2101, Presence: PresenceSometimesRequired, Multi: false}, // (2101) Идентификатор товара
		{Tag: 2105, Presence: PresenceRequired, Multi: false}, // (2105) Коды обработки запроса
		{Tag: 2005, Presence: PresenceSometimesRequired, Multi: false}, // (2005) Результаты обработки запроса
	}
	NotificationReceiptSchema = []Slot{
		{Tag: 2002, Presence: PresenceRequired, Multi: false}, // (2002) Номер уведомления
		{Tag: 1012, Presence: PresenceRequired, Multi: false}, // (1012) Дата, время
		{Tag: 2111, Presence: PresenceRequired, Multi: false}, // (2111) Коды обработки уведомления
		{Tag: 2006, Presence: PresenceSometimesRequired, Multi: false}, // (2006) Результаты обработки уведомления
	}
)