// SPDX-License-Identifier: Unlicense OR MIT

package key

type keysymEntry struct {
	keysym uint16
	ucs    uint16
}

// keysymTab maps key symbols outside the Latin-1 and direct-UCS
// ranges to Unicode. Entries are sorted by keysym for binary search.
var keysymTab = [...]keysymEntry{
	{0x01a1, 0x0104}, // Aogonek
	{0x01a2, 0x02d8}, // breve
	{0x01a3, 0x0141}, // Lstroke
	{0x01a5, 0x013d}, // Lcaron
	{0x01a6, 0x015a}, // Sacute
	{0x01a9, 0x0160}, // Scaron
	{0x01aa, 0x015e}, // Scedilla
	{0x01ab, 0x0164}, // Tcaron
	{0x01ac, 0x0179}, // Zacute
	{0x01ae, 0x017d}, // Zcaron
	{0x01af, 0x017b}, // Zabovedot
	{0x01b1, 0x0105}, // aogonek
	{0x01b2, 0x02db}, // ogonek
	{0x01b3, 0x0142}, // lstroke
	{0x01b5, 0x013e}, // lcaron
	{0x01b6, 0x015b}, // sacute
	{0x01b7, 0x02c7}, // caron
	{0x01b9, 0x0161}, // scaron
	{0x01ba, 0x015f}, // scedilla
	{0x01bb, 0x0165}, // tcaron
	{0x01bc, 0x017a}, // zacute
	{0x01bd, 0x02dd}, // doubleacute
	{0x01be, 0x017e}, // zcaron
	{0x01bf, 0x017c}, // zabovedot
	{0x01c0, 0x0154}, // Racute
	{0x01c3, 0x0102}, // Abreve
	{0x01c5, 0x0139}, // Lacute
	{0x01c6, 0x0106}, // Cacute
	{0x01c8, 0x010c}, // Ccaron
	{0x01ca, 0x0118}, // Eogonek
	{0x01cc, 0x011a}, // Ecaron
	{0x01cf, 0x010e}, // Dcaron
	{0x01d0, 0x0110}, // Dstroke
	{0x01d1, 0x0143}, // Nacute
	{0x01d2, 0x0147}, // Ncaron
	{0x01d5, 0x0150}, // Odoubleacute
	{0x01d8, 0x0158}, // Rcaron
	{0x01d9, 0x016e}, // Uring
	{0x01db, 0x0170}, // Udoubleacute
	{0x01de, 0x0162}, // Tcedilla
	{0x01e0, 0x0155}, // racute
	{0x01e3, 0x0103}, // abreve
	{0x01e5, 0x013a}, // lacute
	{0x01e6, 0x0107}, // cacute
	{0x01e8, 0x010d}, // ccaron
	{0x01ea, 0x0119}, // eogonek
	{0x01ec, 0x011b}, // ecaron
	{0x01ef, 0x010f}, // dcaron
	{0x01f0, 0x0111}, // dstroke
	{0x01f1, 0x0144}, // nacute
	{0x01f2, 0x0148}, // ncaron
	{0x01f5, 0x0151}, // odoubleacute
	{0x01f8, 0x0159}, // rcaron
	{0x01f9, 0x016f}, // uring
	{0x01fb, 0x0171}, // udoubleacute
	{0x01fe, 0x0163}, // tcedilla
	{0x01ff, 0x02d9}, // abovedot
	{0x02a1, 0x0126}, // Hstroke
	{0x02a6, 0x0124}, // Hcircumflex
	{0x02b1, 0x0127}, // hstroke
	{0x02b6, 0x0125}, // hcircumflex
	{0x03a3, 0x0156}, // Rcedilla
	{0x03a6, 0x0112}, // Emacron
	{0x03aa, 0x0122}, // Gcedilla
	{0x03ab, 0x0166}, // Tslash
	{0x03b3, 0x0157}, // rcedilla
	{0x03b6, 0x0113}, // emacron
	{0x03ba, 0x0123}, // gcedilla
	{0x03bb, 0x0167}, // tslash
	{0x03bd, 0x014a}, // ENG
	{0x03bf, 0x014b}, // eng
	{0x03c0, 0x0100}, // Amacron
	{0x03c7, 0x012e}, // Iogonek
	{0x03cc, 0x0116}, // Eabovedot
	{0x03cf, 0x012a}, // Imacron
	{0x03d1, 0x0145}, // Ncedilla
	{0x03d2, 0x014c}, // Omacron
	{0x03d3, 0x0136}, // Kcedilla
	{0x03d9, 0x0172}, // Uogonek
	{0x03dd, 0x0168}, // Utilde
	{0x03de, 0x016a}, // Umacron
	{0x03e0, 0x0101}, // amacron
	{0x03e7, 0x012f}, // iogonek
	{0x03ec, 0x0117}, // eabovedot
	{0x03ef, 0x012b}, // imacron
	{0x03f1, 0x0146}, // ncedilla
	{0x03f2, 0x014d}, // omacron
	{0x03f3, 0x0137}, // kcedilla
	{0x03f9, 0x0173}, // uogonek
	{0x03fd, 0x0169}, // utilde
	{0x03fe, 0x016b}, // umacron
	{0x07a1, 0x0386}, // Greek_ALPHAaccent
	{0x07a2, 0x0388}, // Greek_EPSILONaccent
	{0x07a3, 0x0389}, // Greek_ETAaccent
	{0x07a4, 0x038a}, // Greek_IOTAaccent
	{0x07a5, 0x03aa}, // Greek_IOTAdieresis
	{0x07a7, 0x038c}, // Greek_OMICRONaccent
	{0x07a8, 0x038e}, // Greek_UPSILONaccent
	{0x07a9, 0x03ab}, // Greek_UPSILONdieresis
	{0x07ab, 0x038f}, // Greek_OMEGAaccent
	{0x07ae, 0x0385}, // Greek_accentdieresis
	{0x07af, 0x2015}, // Greek_horizbar
	{0x07b1, 0x03ac}, // Greek_alphaaccent
	{0x07b2, 0x03ad}, // Greek_epsilonaccent
	{0x07b3, 0x03ae}, // Greek_etaaccent
	{0x07b4, 0x03af}, // Greek_iotaaccent
	{0x07b5, 0x03ca}, // Greek_iotadieresis
	{0x07b6, 0x0390}, // Greek_iotaaccentdieresis
	{0x07b7, 0x03cc}, // Greek_omicronaccent
	{0x07b8, 0x03cd}, // Greek_upsilonaccent
	{0x07b9, 0x03cb}, // Greek_upsilondieresis
	{0x07ba, 0x03b0}, // Greek_upsilonaccentdieresis
	{0x07bb, 0x03ce}, // Greek_omegaaccent
	{0x07c1, 0x0391}, // Greek_ALPHA
	{0x07c2, 0x0392}, // Greek_BETA
	{0x07c3, 0x0393}, // Greek_GAMMA
	{0x07c4, 0x0394}, // Greek_DELTA
	{0x07c5, 0x0395}, // Greek_EPSILON
	{0x07c6, 0x0396}, // Greek_ZETA
	{0x07c7, 0x0397}, // Greek_ETA
	{0x07c8, 0x0398}, // Greek_THETA
	{0x07c9, 0x0399}, // Greek_IOTA
	{0x07ca, 0x039a}, // Greek_KAPPA
	{0x07cb, 0x039b}, // Greek_LAMDA
	{0x07cc, 0x039c}, // Greek_MU
	{0x07cd, 0x039d}, // Greek_NU
	{0x07ce, 0x039e}, // Greek_XI
	{0x07cf, 0x039f}, // Greek_OMICRON
	{0x07d0, 0x03a0}, // Greek_PI
	{0x07d1, 0x03a1}, // Greek_RHO
	{0x07d2, 0x03a3}, // Greek_SIGMA
	{0x07d4, 0x03a4}, // Greek_TAU
	{0x07d5, 0x03a5}, // Greek_UPSILON
	{0x07d6, 0x03a6}, // Greek_PHI
	{0x07d7, 0x03a7}, // Greek_CHI
	{0x07d8, 0x03a8}, // Greek_PSI
	{0x07d9, 0x03a9}, // Greek_OMEGA
	{0x07e1, 0x03b1}, // Greek_alpha
	{0x07e2, 0x03b2}, // Greek_beta
	{0x07e3, 0x03b3}, // Greek_gamma
	{0x07e4, 0x03b4}, // Greek_delta
	{0x07e5, 0x03b5}, // Greek_epsilon
	{0x07e6, 0x03b6}, // Greek_zeta
	{0x07e7, 0x03b7}, // Greek_eta
	{0x07e8, 0x03b8}, // Greek_theta
	{0x07e9, 0x03b9}, // Greek_iota
	{0x07ea, 0x03ba}, // Greek_kappa
	{0x07eb, 0x03bb}, // Greek_lamda
	{0x07ec, 0x03bc}, // Greek_mu
	{0x07ed, 0x03bd}, // Greek_nu
	{0x07ee, 0x03be}, // Greek_xi
	{0x07ef, 0x03bf}, // Greek_omicron
	{0x07f0, 0x03c0}, // Greek_pi
	{0x07f1, 0x03c1}, // Greek_rho
	{0x07f2, 0x03c3}, // Greek_sigma
	{0x07f3, 0x03c2}, // Greek_finalsmallsigma
	{0x07f4, 0x03c4}, // Greek_tau
	{0x07f5, 0x03c5}, // Greek_upsilon
	{0x07f6, 0x03c6}, // Greek_phi
	{0x07f7, 0x03c7}, // Greek_chi
	{0x07f8, 0x03c8}, // Greek_psi
	{0x07f9, 0x03c9}, // Greek_omega
	{0x08bc, 0x2264}, // lessthanequal
	{0x08bd, 0x2260}, // notequal
	{0x08be, 0x2265}, // greaterthanequal
	{0x08bf, 0x222b}, // integral
	{0x08c0, 0x2234}, // therefore
	{0x08c1, 0x221d}, // variation
	{0x08c2, 0x221e}, // infinity
	{0x08c5, 0x2207}, // nabla
	{0x08c8, 0x223c}, // approximate
	{0x08c9, 0x2243}, // similarequal
	{0x08cd, 0x21d4}, // ifonlyif
	{0x08ce, 0x21d2}, // implies
	{0x08cf, 0x2261}, // identical
	{0x08d6, 0x221a}, // radical
	{0x08da, 0x2282}, // includedin
	{0x08db, 0x2283}, // includes
	{0x08dc, 0x2229}, // intersection
	{0x08dd, 0x222a}, // union
	{0x08de, 0x2227}, // logicaland
	{0x08df, 0x2228}, // logicalor
	{0x08ef, 0x2202}, // partialderivative
	{0x08f6, 0x0192}, // function
	{0x08fb, 0x2190}, // leftarrow
	{0x08fc, 0x2191}, // uparrow
	{0x08fd, 0x2192}, // rightarrow
	{0x08fe, 0x2193}, // downarrow
	{0x0aa1, 0x2003}, // emspace
	{0x0aa2, 0x2002}, // enspace
	{0x0aa3, 0x2004}, // em3space
	{0x0aa4, 0x2005}, // em4space
	{0x0aa5, 0x2007}, // digitspace
	{0x0aa6, 0x2008}, // punctspace
	{0x0aa7, 0x2009}, // thinspace
	{0x0aa8, 0x200a}, // hairspace
	{0x0aa9, 0x2014}, // emdash
	{0x0aaa, 0x2013}, // endash
	{0x0aae, 0x2026}, // ellipsis
	{0x0aaf, 0x2025}, // doubbaselinedot
	{0x0ab8, 0x2105}, // careof
	{0x0abb, 0x2012}, // figdash
	{0x0ac9, 0x2122}, // trademark
	{0x0ad0, 0x2018}, // leftsinglequotemark
	{0x0ad1, 0x2019}, // rightsinglequotemark
	{0x0ad2, 0x201c}, // leftdoublequotemark
	{0x0ad3, 0x201d}, // rightdoublequotemark
	{0x0ad4, 0x211e}, // prescription
	{0x0ad6, 0x2032}, // minutes
	{0x0ad7, 0x2033}, // seconds
	{0x20ac, 0x20ac}, // EuroSign
	{0xff08, 0x0008}, // BackSpace
	{0xff09, 0x0009}, // Tab
	{0xff0a, 0x000a}, // Linefeed
	{0xff0b, 0x000b}, // Clear
	{0xff0d, 0x000d}, // Return
	{0xff1b, 0x001b}, // Escape
	{0xff80, 0x0020}, // KP_Space
	{0xff89, 0x0009}, // KP_Tab
	{0xff8d, 0x000d}, // KP_Enter
	{0xffaa, 0x002a}, // KP_Multiply
	{0xffab, 0x002b}, // KP_Add
	{0xffac, 0x002c}, // KP_Separator
	{0xffad, 0x002d}, // KP_Subtract
	{0xffae, 0x002e}, // KP_Decimal
	{0xffaf, 0x002f}, // KP_Divide
	{0xffb0, 0x0030}, // KP_0
	{0xffb1, 0x0031}, // KP_1
	{0xffb2, 0x0032}, // KP_2
	{0xffb3, 0x0033}, // KP_3
	{0xffb4, 0x0034}, // KP_4
	{0xffb5, 0x0035}, // KP_5
	{0xffb6, 0x0036}, // KP_6
	{0xffb7, 0x0037}, // KP_7
	{0xffb8, 0x0038}, // KP_8
	{0xffb9, 0x0039}, // KP_9
	{0xffbd, 0x003d}, // KP_Equal
	{0xffff, 0x007f}, // Delete
}
