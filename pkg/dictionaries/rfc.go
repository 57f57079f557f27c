package dictionaries

import "github.com/vitalvas/radclient/pkg/dictionary"

// StandardRFCAttributes contains the RFC 2865/2866/2869/3576 attributes known to the client
var StandardRFCAttributes = []*dictionary.AttributeDefinition{
	{ID: 1, Name: "User-Name", DataType: dictionary.DataTypeString},                                                    // RFC2865
	{ID: 2, Name: "User-Password", DataType: dictionary.DataTypeString, Encryption: dictionary.EncryptionUserPassword}, // RFC2865
	{ID: 3, Name: "CHAP-Password", DataType: dictionary.DataTypeOctets},                                                // RFC2865
	{ID: 4, Name: "NAS-IP-Address", DataType: dictionary.DataTypeIPAddr},                                               // RFC2865
	{ID: 5, Name: "NAS-Port", DataType: dictionary.DataTypeInteger},                                                    // RFC2865
	{ // RFC2865
		ID:       6,
		Name:     "Service-Type",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Login-User":              1,  // RFC2865
			"Framed-User":             2,  // RFC2865
			"Callback-Login-User":     3,  // RFC2865
			"Callback-Framed-User":    4,  // RFC2865
			"Outbound-User":           5,  // RFC2865
			"Administrative-User":     6,  // RFC2865
			"NAS-Prompt-User":         7,  // RFC2865
			"Authenticate-Only":       8,  // RFC2865
			"Callback-NAS-Prompt":     9,  // RFC2865
			"Call-Check":              10, // RFC2865
			"Callback-Administrative": 11, // RFC2865
			"Authorize-Only":          17, // RFC2865
			"Framed-Management":       18, // RFC2865
		},
	},
	{ // RFC2865
		ID:       7,
		Name:     "Framed-Protocol",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"PPP":               1, // RFC2865
			"SLIP":              2, // RFC2865
			"ARAP":              3, // RFC2865
			"Gandalf-SLML":      4, // RFC2865
			"Xylogics-IPX-SLIP": 5, // RFC2865
			"X.75-Synchronous":  6, // RFC2865
		},
	},
	{ID: 8, Name: "Framed-IP-Address", DataType: dictionary.DataTypeIPAddr}, // RFC2865
	{ID: 9, Name: "Framed-IP-Netmask", DataType: dictionary.DataTypeIPAddr}, // RFC2865
	{ // RFC2865
		ID:       10,
		Name:     "Framed-Routing",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"None":             0, // RFC2865
			"Broadcast":        1, // RFC2865
			"Listen":           2, // RFC2865
			"Broadcast-Listen": 3, // RFC2865
		},
	},
	{ID: 11, Name: "Filter-Id", DataType: dictionary.DataTypeString},   // RFC2865
	{ID: 12, Name: "Framed-MTU", DataType: dictionary.DataTypeInteger}, // RFC2865
	{ // RFC2865
		ID:       13,
		Name:     "Framed-Compression",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"None":                   0, // RFC2865
			"Van-Jacobson-TCP-IP":    1, // RFC2865
			"IPX-Header-Compression": 2, // RFC2865
			"Stac-LZS":               3, // RFC2865
		},
	},
	{ID: 14, Name: "Login-IP-Host", DataType: dictionary.DataTypeIPAddr}, // RFC2865
	{ // RFC2865
		ID:       15,
		Name:     "Login-Service",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Telnet":          0, // RFC2865
			"Rlogin":          1, // RFC2865
			"TCP-Clear":       2, // RFC2865
			"PortMaster":      3, // RFC2865
			"LAT":             4, // RFC2865
			"X25-PAD":         5, // RFC2865
			"X25-T3POS":       6, // RFC2865
			"TCP-Clear-Quiet": 8, // RFC2865
		},
	},
	{ // RFC2865
		ID:       16,
		Name:     "Login-TCP-Port",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Telnet": 23,  // RFC2865
			"Rlogin": 513, // RFC2865
			"Rsh":    514, // RFC2865
		},
	},
	{ID: 18, Name: "Reply-Message", DataType: dictionary.DataTypeString},      // RFC2865
	{ID: 19, Name: "Callback-Number", DataType: dictionary.DataTypeString},    // RFC2865
	{ID: 20, Name: "Callback-Id", DataType: dictionary.DataTypeString},        // RFC2865
	{ID: 22, Name: "Framed-Route", DataType: dictionary.DataTypeString},       // RFC2865
	{ID: 23, Name: "Framed-IPX-Network", DataType: dictionary.DataTypeIPAddr}, // RFC2865
	{ID: 24, Name: "State", DataType: dictionary.DataTypeOctets},              // RFC2865
	{ID: 25, Name: "Class", DataType: dictionary.DataTypeOctets},              // RFC2865
	{ID: 26, Name: "Vendor-Specific", DataType: dictionary.DataTypeOctets},    // RFC2865
	{ID: 27, Name: "Session-Timeout", DataType: dictionary.DataTypeInteger},   // RFC2865
	{ID: 28, Name: "Idle-Timeout", DataType: dictionary.DataTypeInteger},      // RFC2865
	{ // RFC2865
		ID:       29,
		Name:     "Termination-Action",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Default":        0, // RFC2865
			"RADIUS-Request": 1, // RFC2865
		},
	},
	{ID: 30, Name: "Called-Station-Id", DataType: dictionary.DataTypeString},         // RFC2865
	{ID: 31, Name: "Calling-Station-Id", DataType: dictionary.DataTypeString},        // RFC2865
	{ID: 32, Name: "NAS-Identifier", DataType: dictionary.DataTypeString},            // RFC2865
	{ID: 33, Name: "Proxy-State", DataType: dictionary.DataTypeOctets},               // RFC2865
	{ID: 34, Name: "Login-LAT-Service", DataType: dictionary.DataTypeString},         // RFC2865
	{ID: 35, Name: "Login-LAT-Node", DataType: dictionary.DataTypeString},            // RFC2865
	{ID: 36, Name: "Login-LAT-Group", DataType: dictionary.DataTypeOctets},           // RFC2865
	{ID: 37, Name: "Framed-AppleTalk-Link", DataType: dictionary.DataTypeInteger},    // RFC2865
	{ID: 38, Name: "Framed-AppleTalk-Network", DataType: dictionary.DataTypeInteger}, // RFC2865
	{ID: 39, Name: "Framed-AppleTalk-Zone", DataType: dictionary.DataTypeString},     // RFC2865
	{ // RFC2866
		ID:       40,
		Name:     "Acct-Status-Type",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Start":              1,  // RFC2866
			"Stop":               2,  // RFC2866
			"Alive":              3,  // RFC2866
			"Interim-Update":     3,  // RFC2866
			"Accounting-On":      7,  // RFC2866
			"Accounting-Off":     8,  // RFC2866
			"Tunnel-Start":       9,  // RFC2866
			"Tunnel-Stop":        10, // RFC2866
			"Tunnel-Reject":      11, // RFC2866
			"Tunnel-Link-Start":  12, // RFC2866
			"Tunnel-Link-Stop":   13, // RFC2866
			"Tunnel-Link-Reject": 14, // RFC2866
			"Failed":             15, // RFC2866
		},
	},
	{ID: 41, Name: "Acct-Delay-Time", DataType: dictionary.DataTypeInteger},    // RFC2866
	{ID: 42, Name: "Acct-Input-Octets", DataType: dictionary.DataTypeInteger},  // RFC2866
	{ID: 43, Name: "Acct-Output-Octets", DataType: dictionary.DataTypeInteger}, // RFC2866
	{ID: 44, Name: "Acct-Session-Id", DataType: dictionary.DataTypeString},     // RFC2866
	{ // RFC2866
		ID:       45,
		Name:     "Acct-Authentic",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"RADIUS":   1, // RFC2866
			"Local":    2, // RFC2866
			"Remote":   3, // RFC2866
			"Diameter": 4, // RFC2866
		},
	},
	{ID: 46, Name: "Acct-Session-Time", DataType: dictionary.DataTypeInteger},   // RFC2866
	{ID: 47, Name: "Acct-Input-Packets", DataType: dictionary.DataTypeInteger},  // RFC2866
	{ID: 48, Name: "Acct-Output-Packets", DataType: dictionary.DataTypeInteger}, // RFC2866
	{ // RFC2866
		ID:       49,
		Name:     "Acct-Terminate-Cause",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"User-Request":             1,  // RFC2866
			"Lost-Carrier":             2,  // RFC2866
			"Lost-Service":             3,  // RFC2866
			"Idle-Timeout":             4,  // RFC2866
			"Session-Timeout":          5,  // RFC2866
			"Admin-Reset":              6,  // RFC2866
			"Admin-Reboot":             7,  // RFC2866
			"Port-Error":               8,  // RFC2866
			"NAS-Error":                9,  // RFC2866
			"NAS-Request":              10, // RFC2866
			"NAS-Reboot":               11, // RFC2866
			"Port-Unneeded":            12, // RFC2866
			"Port-Preempted":           13, // RFC2866
			"Port-Suspended":           14, // RFC2866
			"Service-Unavailable":      15, // RFC2866
			"Callback":                 16, // RFC2866
			"User-Error":               17, // RFC2866
			"Host-Request":             18, // RFC2866
			"Supplicant-Restart":       19, // RFC2866
			"Reauthentication-Failure": 20, // RFC2866
			"Port-Reinit":              21, // RFC2866
			"Port-Disabled":            22, // RFC2866
		},
	},
	{ID: 50, Name: "Acct-Multi-Session-Id", DataType: dictionary.DataTypeString},  // RFC2866
	{ID: 51, Name: "Acct-Link-Count", DataType: dictionary.DataTypeInteger},       // RFC2866
	{ID: 52, Name: "Acct-Input-Gigawords", DataType: dictionary.DataTypeInteger},  // RFC2869
	{ID: 53, Name: "Acct-Output-Gigawords", DataType: dictionary.DataTypeInteger}, // RFC2869
	{ID: 55, Name: "Event-Timestamp", DataType: dictionary.DataTypeDate},          // RFC2869
	{ID: 56, Name: "Egress-VLANID", DataType: dictionary.DataTypeInteger},         // RFC4675
	{ // RFC4675
		ID:       57,
		Name:     "Ingress-Filters",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Enabled":  1, // RFC4675
			"Disabled": 2, // RFC4675
		},
	},
	{ID: 58, Name: "Egress-VLAN-Name", DataType: dictionary.DataTypeString},    // RFC4675
	{ID: 59, Name: "User-Priority-Table", DataType: dictionary.DataTypeOctets}, // RFC4675
	{ID: 60, Name: "CHAP-Challenge", DataType: dictionary.DataTypeOctets},      // RFC2865
	{ // RFC2865
		ID:       61,
		Name:     "NAS-Port-Type",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Async":              0,  // RFC2865
			"Sync":               1,  // RFC2865
			"ISDN":               2,  // RFC2865
			"ISDN-V120":          3,  // RFC2865
			"ISDN-V110":          4,  // RFC2865
			"Virtual":            5,  // RFC2865
			"PIAFS":              6,  // RFC2865
			"HDLC-Clear-Channel": 7,  // RFC2865
			"X.25":               8,  // RFC2865
			"X.75":               9,  // RFC2865
			"G.3-Fax":            10, // RFC2865
			"SDSL":               11, // RFC2865
			"ADSL-CAP":           12, // RFC2865
			"ADSL-DMT":           13, // RFC2865
			"IDSL":               14, // RFC2865
			"Ethernet":           15, // RFC2865
			"xDSL":               16, // RFC2865
			"Cable":              17, // RFC2865
			"Wireless-Other":     18, // RFC2865
			"Wireless-802.11":    19, // RFC2865
			"Token-Ring":         20, // RFC2865
			"FDDI":               21, // RFC2865
			"PPPoA":              30, // RFC2865
			"PPPoEoA":            31, // RFC2865
			"PPPoEoE":            32, // RFC2865
			"PPPoEoVLAN":         33, // RFC2865
			"PPPoEoQinQ":         34, // RFC2865
		},
	},
	{ID: 62, Name: "Port-Limit", DataType: dictionary.DataTypeInteger},    // RFC2865
	{ID: 63, Name: "Login-LAT-Port", DataType: dictionary.DataTypeString}, // RFC2865
	{ // RFC2868
		ID:       64,
		Name:     "Tunnel-Type",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"PPTP":     1,  // RFC2868
			"L2F":      2,  // RFC2868
			"L2TP":     3,  // RFC2868
			"ATMP":     4,  // RFC2868
			"VTP":      5,  // RFC2868
			"AH":       6,  // RFC2868
			"IP":       7,  // RFC2868
			"MIN-IP":   8,  // RFC2868
			"ESP":      9,  // RFC2868
			"GRE":      10, // RFC2868
			"DVS":      11, // RFC2868
			"IP-in-IP": 12, // RFC2868
			"VLAN":     13, // RFC2868
		},
	},
	{ // RFC2868
		ID:       65,
		Name:     "Tunnel-Medium-Type",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"IP":           1,  // RFC2868
			"IPv4":         1,  // RFC2868
			"IPv6":         2,  // RFC2868
			"NSAP":         3,  // RFC2868
			"HDLC":         4,  // RFC2868
			"BBN-1822":     5,  // RFC2868
			"IEEE-802":     6,  // RFC2868
			"E.163":        7,  // RFC2868
			"E.164":        8,  // RFC2868
			"F.69":         9,  // RFC2868
			"X.121":        10, // RFC2868
			"IPX":          11, // RFC2868
			"Appletalk":    12, // RFC2868
			"DecNet-IV":    13, // RFC2868
			"Banyan-Vines": 14, // RFC2868
			"E.164-NSAP":   15, // RFC2868
		},
	},
	{ID: 66, Name: "Tunnel-Client-Endpoint", DataType: dictionary.DataTypeString}, // RFC2868
	{ID: 67, Name: "Tunnel-Server-Endpoint", DataType: dictionary.DataTypeString}, // RFC2868
	{ID: 68, Name: "Acct-Tunnel-Connection", DataType: dictionary.DataTypeString}, // RFC2867
	{ID: 70, Name: "ARAP-Password", DataType: dictionary.DataTypeOctets},          // RFC2869
	{ID: 71, Name: "ARAP-Features", DataType: dictionary.DataTypeOctets},          // RFC2869
	{ // RFC2869
		ID:       72,
		Name:     "ARAP-Zone-Access",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Default-Zone":          1, // RFC2869
			"Zone-Filter-Inclusive": 2, // RFC2869
			"Zone-Filter-Exclusive": 4, // RFC2869
		},
	},
	{ID: 73, Name: "ARAP-Security", DataType: dictionary.DataTypeInteger},     // RFC2869
	{ID: 74, Name: "ARAP-Security-Data", DataType: dictionary.DataTypeString}, // RFC2869
	{ID: 75, Name: "Password-Retry", DataType: dictionary.DataTypeInteger},    // RFC2869
	{ // RFC2869
		ID:       76,
		Name:     "Prompt",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"No-Echo": 0, // RFC2869
			"Echo":    1, // RFC2869
		},
	},
	{ID: 77, Name: "Connect-Info", DataType: dictionary.DataTypeString},              // RFC2869
	{ID: 78, Name: "Configuration-Token", DataType: dictionary.DataTypeString},       // RFC2869
	{ID: 79, Name: "EAP-Message", DataType: dictionary.DataTypeOctets},               // RFC2869
	{ID: 80, Name: "Message-Authenticator", DataType: dictionary.DataTypeOctets},     // RFC2869
	{ID: 81, Name: "Tunnel-Private-Group-Id", DataType: dictionary.DataTypeString},   // RFC2868
	{ID: 82, Name: "Tunnel-Assignment-Id", DataType: dictionary.DataTypeString},      // RFC2868
	{ID: 83, Name: "Tunnel-Preference", DataType: dictionary.DataTypeInteger},        // RFC2868
	{ID: 84, Name: "ARAP-Challenge-Response", DataType: dictionary.DataTypeOctets},   // RFC2869
	{ID: 85, Name: "Acct-Interim-Interval", DataType: dictionary.DataTypeInteger},    // RFC2869
	{ID: 86, Name: "Acct-Tunnel-Packets-Lost", DataType: dictionary.DataTypeInteger}, // RFC2867
	{ID: 87, Name: "NAS-Port-Id", DataType: dictionary.DataTypeString},               // RFC2869
	{ID: 88, Name: "Framed-Pool", DataType: dictionary.DataTypeString},               // RFC2869
	{ID: 89, Name: "Chargeable-User-Identity", DataType: dictionary.DataTypeOctets},  // RFC4372
	{ID: 90, Name: "Tunnel-Client-Auth-Id", DataType: dictionary.DataTypeString},     // RFC2868
	{ID: 91, Name: "Tunnel-Server-Auth-Id", DataType: dictionary.DataTypeString},     // RFC2868
	{ID: 92, Name: "NAS-Filter-Rule", DataType: dictionary.DataTypeString},           // RFC4849
	{ID: 94, Name: "Originating-Line-Info", DataType: dictionary.DataTypeOctets},     // RFC7155
	{ID: 95, Name: "NAS-IPv6-Address", DataType: dictionary.DataTypeIPv6Addr},        // RFC3162
	{ID: 98, Name: "Login-IPv6-Host", DataType: dictionary.DataTypeIPv6Addr},         // RFC3162
	{ID: 99, Name: "Framed-IPv6-Route", DataType: dictionary.DataTypeString},         // RFC3162
	{ID: 100, Name: "Framed-IPv6-Pool", DataType: dictionary.DataTypeString},         // RFC3162
	{ // RFC3576
		ID:       101,
		Name:     "Error-Cause",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Residual-Context-Removed":               201, // RFC3576
			"Invalid-EAP-Packet":                     202, // RFC3576
			"Unsupported-Attribute":                  401, // RFC3576
			"Missing-Attribute":                      402, // RFC3576
			"NAS-Identification-Mismatch":            403, // RFC3576
			"Invalid-Request":                        404, // RFC3576
			"Unsupported-Service":                    405, // RFC3576
			"Unsupported-Extension":                  406, // RFC3576
			"Invalid-Attribute-Value":                407, // RFC3576
			"Administratively-Prohibited":            501, // RFC3576
			"Proxy-Request-Not-Routable":             502, // RFC3576
			"Session-Context-Not-Found":              503, // RFC3576
			"Session-Context-Not-Removable":          504, // RFC3576
			"Proxy-Processing-Error":                 505, // RFC3576
			"Resources-Unavailable":                  506, // RFC3576
			"Request-Initiated":                      507, // RFC3576
			"Multiple-Session-Selection-Unsupported": 508, // RFC3576
		},
	},
}
