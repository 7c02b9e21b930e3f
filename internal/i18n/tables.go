package i18n

import "github.com/idilsaglam/brewbuddy/internal/model"

var translations = map[model.Language]map[Key]string{
	model.English: {
		Welcome:        "Welcome to BrewBuddy",
		SelectLanguage: "Select Your Language",
		StartOrder:     "Start Voice Order",
		SpeakOrder:     "Press & Hold to Speak Your Order",
		Listening:      "Listening...",
		PressToSpeak:   "Press space to speak",
		Processing:     "Processing your order...",
		PlaceOrder:     "Place Order",
		NotSupported:   "Speech recognition is not supported on this kiosk.",
		SpeechError:    "Speech recognition error: %s",
		OrderSummary:   "Order Summary",
		OrderNumber:    "Order #",
		Total:          "Total",
		YourQRCode:     "Your QR Code",
		TrackOrder:     "Track Your Order",
		OrderStatus:    "Order Status",
		Pending:        "Order Received",
		Preparing:      "Preparing Your Order",
		Ready:          "Order Ready!",
		PickupMessage:  "🎉 Your delicious coffee is ready! Please show your QR code at the counter.",
		TryAgain:       "Try Again",
		NewOrder:       "New Order",
		NoItems:        "(no items)",

		HintLanguage:     "↑/↓ choose • enter select • q quit",
		HintHome:         "enter start • q quit",
		HintOrderIdle:    "space speak • enter place order • q quit",
		HintListening:    "type your order • enter finish • esc stop",
		HintConfirmation: "enter track order • q quit",
		HintTracking:     "q quit",
		HintReady:        "enter new order • q quit",
	},
	model.Hindi: {
		Welcome:        "ब्रूबडी में आपका स्वागत है",
		SelectLanguage: "अपनी भाषा चुनें",
		StartOrder:     "वॉइस ऑर्डर शुरू करें",
		SpeakOrder:     "अपना ऑर्डर बोलने के लिए दबाएं और पकड़ें",
		Listening:      "सुन रहे हैं...",
		PressToSpeak:   "बोलने के लिए स्पेस दबाएं",
		Processing:     "आपका ऑर्डर प्रोसेस कर रहे हैं...",
		PlaceOrder:     "ऑर्डर करें",
		NotSupported:   "इस कियोस्क पर वाक् पहचान समर्थित नहीं है।",
		SpeechError:    "वाक् पहचान त्रुटि: %s",
		OrderSummary:   "ऑर्डर सारांश",
		OrderNumber:    "ऑर्डर #",
		Total:          "कुल",
		YourQRCode:     "आपका QR कोड",
		TrackOrder:     "अपना ऑर्डर ट्रैक करें",
		OrderStatus:    "ऑर्डर स्थिति",
		Pending:        "ऑर्डर प्राप्त",
		Preparing:      "आपका ऑर्डर तैयार कर रहे हैं",
		Ready:          "ऑर्डर तैयार!",
		PickupMessage:  "🎉 आपकी स्वादिष्ट कॉफी तैयार है! कृपया काउंटर पर अपना QR कोड दिखाएं।",
		TryAgain:       "फिर कोशिश करें",
		NewOrder:       "नया ऑर्डर",
		NoItems:        "(कोई आइटम नहीं)",

		HintLanguage:     "↑/↓ चुनें • enter चयन • q बाहर",
		HintHome:         "enter शुरू • q बाहर",
		HintOrderIdle:    "space बोलें • enter ऑर्डर करें • q बाहर",
		HintListening:    "अपना ऑर्डर लिखें • enter पूरा • esc रोकें",
		HintConfirmation: "enter ऑर्डर ट्रैक करें • q बाहर",
		HintTracking:     "q बाहर",
		HintReady:        "enter नया ऑर्डर • q बाहर",
	},
	model.Korean: {
		Welcome:        "브루버디에 오신 것을 환영합니다",
		SelectLanguage: "언어를 선택하세요",
		StartOrder:     "음성 주문 시작",
		SpeakOrder:     "주문하려면 길게 누르고 말하세요",
		Listening:      "듣고 있습니다...",
		PressToSpeak:   "말하려면 스페이스를 누르세요",
		Processing:     "주문을 처리하고 있습니다...",
		PlaceOrder:     "주문하기",
		NotSupported:   "이 키오스크에서는 음성 인식을 지원하지 않습니다.",
		SpeechError:    "음성 인식 오류: %s",
		OrderSummary:   "주문 요약",
		OrderNumber:    "주문 #",
		Total:          "총액",
		YourQRCode:     "QR 코드",
		TrackOrder:     "주문 추적",
		OrderStatus:    "주문 상태",
		Pending:        "주문 접수됨",
		Preparing:      "주문 준비 중",
		Ready:          "주문 완료!",
		PickupMessage:  "🎉 맛있는 커피가 준비되었습니다! 카운터에서 QR 코드를 보여주세요.",
		TryAgain:       "다시 시도",
		NewOrder:       "새 주문",
		NoItems:        "(항목 없음)",

		HintLanguage:     "↑/↓ 선택 • enter 확인 • q 종료",
		HintHome:         "enter 시작 • q 종료",
		HintOrderIdle:    "space 말하기 • enter 주문하기 • q 종료",
		HintListening:    "주문을 입력하세요 • enter 완료 • esc 중지",
		HintConfirmation: "enter 주문 추적 • q 종료",
		HintTracking:     "q 종료",
		HintReady:        "enter 새 주문 • q 종료",
	},
}
