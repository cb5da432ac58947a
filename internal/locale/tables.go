package locale

var ko = Texts{
	Months:      [12]string{"1월", "2월", "3월", "4월", "5월", "6월", "7월", "8월", "9월", "10월", "11월", "12월"},
	Weekdays:    [7]string{"일", "월", "화", "수", "목", "금", "토"},
	Today:       "오늘",
	Confirm:     "확인",
	Cancel:      "취소",
	Close:       "닫기",
	SelectYear:  "연도 선택",
	SelectMonth: "월 선택",
	YearSuffix:  "년",
	YearFirst:   true,
	AM:          "오전",
	PM:          "오후",
}

var en = Texts{
	Months:      [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	Weekdays:    [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
	Today:       "Today",
	Confirm:     "OK",
	Cancel:      "Cancel",
	Close:       "Close",
	SelectYear:  "Select year",
	SelectMonth: "Select month",
	AM:          "AM",
	PM:          "PM",
}

var ja = Texts{
	Months:      [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
	Weekdays:    [7]string{"日", "月", "火", "水", "木", "金", "土"},
	Today:       "今日",
	Confirm:     "確認",
	Cancel:      "キャンセル",
	Close:       "閉じる",
	SelectYear:  "年を選択",
	SelectMonth: "月を選択",
	YearSuffix:  "年",
	YearFirst:   true,
	AM:          "午前",
	PM:          "午後",
}

var zhCN = Texts{
	Months:      [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
	Weekdays:    [7]string{"日", "一", "二", "三", "四", "五", "六"},
	Today:       "今天",
	Confirm:     "确定",
	Cancel:      "取消",
	Close:       "关闭",
	SelectYear:  "选择年份",
	SelectMonth: "选择月份",
	YearSuffix:  "年",
	YearFirst:   true,
	AM:          "上午",
	PM:          "下午",
}

var zhTW = Texts{
	Months:      [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
	Weekdays:    [7]string{"日", "一", "二", "三", "四", "五", "六"},
	Today:       "今天",
	Confirm:     "確定",
	Cancel:      "取消",
	Close:       "關閉",
	SelectYear:  "選擇年份",
	SelectMonth: "選擇月份",
	YearSuffix:  "年",
	YearFirst:   true,
	AM:          "上午",
	PM:          "下午",
}

var es = Texts{
	Months:      [12]string{"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio", "Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre"},
	Weekdays:    [7]string{"Do", "Lu", "Ma", "Mi", "Ju", "Vi", "Sá"},
	Today:       "Hoy",
	Confirm:     "Aceptar",
	Cancel:      "Cancelar",
	Close:       "Cerrar",
	SelectYear:  "Seleccionar año",
	SelectMonth: "Seleccionar mes",
	AM:          "a. m.",
	PM:          "p. m.",
}

var fr = Texts{
	Months:      [12]string{"Janvier", "Février", "Mars", "Avril", "Mai", "Juin", "Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre"},
	Weekdays:    [7]string{"Di", "Lu", "Ma", "Me", "Je", "Ve", "Sa"},
	Today:       "Aujourd'hui",
	Confirm:     "Valider",
	Cancel:      "Annuler",
	Close:       "Fermer",
	SelectYear:  "Choisir l'année",
	SelectMonth: "Choisir le mois",
	AM:          "AM",
	PM:          "PM",
}

var de = Texts{
	Months:      [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
	Weekdays:    [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	Today:       "Heute",
	Confirm:     "OK",
	Cancel:      "Abbrechen",
	Close:       "Schließen",
	SelectYear:  "Jahr wählen",
	SelectMonth: "Monat wählen",
	AM:          "AM",
	PM:          "PM",
}

var pt = Texts{
	Months:      [12]string{"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho", "Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro"},
	Weekdays:    [7]string{"Do", "Se", "Te", "Qa", "Qi", "Sx", "Sá"},
	Today:       "Hoje",
	Confirm:     "Confirmar",
	Cancel:      "Cancelar",
	Close:       "Fechar",
	SelectYear:  "Selecionar ano",
	SelectMonth: "Selecionar mês",
	AM:          "AM",
	PM:          "PM",
}

var ru = Texts{
	Months:      [12]string{"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь", "Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь"},
	Weekdays:    [7]string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"},
	Today:       "Сегодня",
	Confirm:     "ОК",
	Cancel:      "Отмена",
	Close:       "Закрыть",
	SelectYear:  "Выберите год",
	SelectMonth: "Выберите месяц",
	AM:          "AM",
	PM:          "PM",
}

var it = Texts{
	Months:      [12]string{"Gennaio", "Febbraio", "Marzo", "Aprile", "Maggio", "Giugno", "Luglio", "Agosto", "Settembre", "Ottobre", "Novembre", "Dicembre"},
	Weekdays:    [7]string{"Do", "Lu", "Ma", "Me", "Gi", "Ve", "Sa"},
	Today:       "Oggi",
	Confirm:     "Conferma",
	Cancel:      "Annulla",
	Close:       "Chiudi",
	SelectYear:  "Seleziona anno",
	SelectMonth: "Seleziona mese",
	AM:          "AM",
	PM:          "PM",
}

var ar = Texts{
	Months:      [12]string{"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو", "يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر"},
	Weekdays:    [7]string{"أحد", "إثن", "ثلا", "أرب", "خمي", "جمع", "سبت"},
	Today:       "اليوم",
	Confirm:     "تأكيد",
	Cancel:      "إلغاء",
	Close:       "إغلاق",
	SelectYear:  "اختر السنة",
	SelectMonth: "اختر الشهر",
	AM:          "ص",
	PM:          "م",
}

var hi = Texts{
	Months:      [12]string{"जनवरी", "फ़रवरी", "मार्च", "अप्रैल", "मई", "जून", "जुलाई", "अगस्त", "सितंबर", "अक्टूबर", "नवंबर", "दिसंबर"},
	Weekdays:    [7]string{"रवि", "सोम", "मंगल", "बुध", "गुरु", "शुक्र", "शनि"},
	Today:       "आज",
	Confirm:     "ठीक है",
	Cancel:      "रद्द करें",
	Close:       "बंद करें",
	SelectYear:  "वर्ष चुनें",
	SelectMonth: "महीना चुनें",
	AM:          "पूर्वाह्न",
	PM:          "अपराह्न",
}

var vi = Texts{
	Months:      [12]string{"Tháng 1", "Tháng 2", "Tháng 3", "Tháng 4", "Tháng 5", "Tháng 6", "Tháng 7", "Tháng 8", "Tháng 9", "Tháng 10", "Tháng 11", "Tháng 12"},
	Weekdays:    [7]string{"CN", "T2", "T3", "T4", "T5", "T6", "T7"},
	Today:       "Hôm nay",
	Confirm:     "Xác nhận",
	Cancel:      "Hủy",
	Close:       "Đóng",
	SelectYear:  "Chọn năm",
	SelectMonth: "Chọn tháng",
	AM:          "SA",
	PM:          "CH",
}

var th = Texts{
	Months:      [12]string{"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน", "กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม"},
	Weekdays:    [7]string{"อา", "จ", "อ", "พ", "พฤ", "ศ", "ส"},
	Today:       "วันนี้",
	Confirm:     "ตกลง",
	Cancel:      "ยกเลิก",
	Close:       "ปิด",
	SelectYear:  "เลือกปี",
	SelectMonth: "เลือกเดือน",
	AM:          "AM",
	PM:          "PM",
}

var id = Texts{
	Months:      [12]string{"Januari", "Februari", "Maret", "April", "Mei", "Juni", "Juli", "Agustus", "September", "Oktober", "November", "Desember"},
	Weekdays:    [7]string{"Mg", "Sn", "Sl", "Rb", "Km", "Jm", "Sb"},
	Today:       "Hari ini",
	Confirm:     "OK",
	Cancel:      "Batal",
	Close:       "Tutup",
	SelectYear:  "Pilih tahun",
	SelectMonth: "Pilih bulan",
	AM:          "AM",
	PM:          "PM",
}

var nl = Texts{
	Months:      [12]string{"Januari", "Februari", "Maart", "April", "Mei", "Juni", "Juli", "Augustus", "September", "Oktober", "November", "December"},
	Weekdays:    [7]string{"Zo", "Ma", "Di", "Wo", "Do", "Vr", "Za"},
	Today:       "Vandaag",
	Confirm:     "OK",
	Cancel:      "Annuleren",
	Close:       "Sluiten",
	SelectYear:  "Kies jaar",
	SelectMonth: "Kies maand",
	AM:          "AM",
	PM:          "PM",
}

var pl = Texts{
	Months:      [12]string{"Styczeń", "Luty", "Marzec", "Kwiecień", "Maj", "Czerwiec", "Lipiec", "Sierpień", "Wrzesień", "Październik", "Listopad", "Grudzień"},
	Weekdays:    [7]string{"Nd", "Pn", "Wt", "Śr", "Cz", "Pt", "So"},
	Today:       "Dziś",
	Confirm:     "OK",
	Cancel:      "Anuluj",
	Close:       "Zamknij",
	SelectYear:  "Wybierz rok",
	SelectMonth: "Wybierz miesiąc",
	AM:          "AM",
	PM:          "PM",
}

var tr = Texts{
	Months:      [12]string{"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran", "Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık"},
	Weekdays:    [7]string{"Pz", "Pt", "Sa", "Ça", "Pe", "Cu", "Ct"},
	Today:       "Bugün",
	Confirm:     "Tamam",
	Cancel:      "İptal",
	Close:       "Kapat",
	SelectYear:  "Yıl seçin",
	SelectMonth: "Ay seçin",
	AM:          "ÖÖ",
	PM:          "ÖS",
}

var bundled = map[string]Texts{
	"ko":    ko,
	"en":    en,
	"ja":    ja,
	"zh-CN": zhCN,
	"zh-TW": zhTW,
	"es":    es,
	"fr":    fr,
	"de":    de,
	"pt":    pt,
	"ru":    ru,
	"it":    it,
	"ar":    ar,
	"hi":    hi,
	"vi":    vi,
	"th":    th,
	"id":    id,
	"nl":    nl,
	"pl":    pl,
	"tr":    tr,
}
